package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a keyed lookup resolves nothing.
var ErrNotFound = errors.New("not found")

// RestaurantRepository defines persistence for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, r *entity.Restaurant) error
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	List(ctx context.Context, q entity.RestaurantQuery) ([]entity.Restaurant, int, error)
	Update(ctx context.Context, r *entity.Restaurant) error
	Delete(ctx context.Context, id int64) error
	CountByCreator(ctx context.Context, userID int64) (int, error)
}

// DishRepository defines persistence for dishes. Every lookup is scoped to a restaurant.
type DishRepository interface {
	Create(ctx context.Context, d *entity.Dish) error
	GetByID(ctx context.Context, restaurantID, dishID int64) (*entity.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Dish, error)
	Update(ctx context.Context, d *entity.Dish) error
	Delete(ctx context.Context, restaurantID, dishID int64) error
	DeleteByRestaurant(ctx context.Context, restaurantID int64) error
}
