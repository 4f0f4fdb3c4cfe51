package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	repo "github.com/oksasatya/restaurant-api/internal/domain/repository"
)

// DishService manages dishes. Mutations are authorized against the parent restaurant.
type DishService struct {
	Restaurants repo.RestaurantRepository
	Repo        repo.DishRepository
}

func NewDishService(restaurants repo.RestaurantRepository, dishes repo.DishRepository) *DishService {
	return &DishService{Restaurants: restaurants, Repo: dishes}
}

func (s *DishService) Create(ctx context.Context, p authorization.Principal, restaurantID int64, in dto.CreateDishRequest) (int64, error) {
	if _, err := s.authorizedRestaurant(ctx, p, restaurantID, authorization.OperationUpdate); err != nil {
		return 0, err
	}
	d := &entity.Dish{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		RestaurantID: restaurantID,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return 0, fmt.Errorf("create dish: %w", err)
	}
	return d.ID, nil
}

func (s *DishService) GetByID(ctx context.Context, restaurantID, dishID int64) (*dto.DishResponse, error) {
	if _, err := s.restaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	d, err := s.dish(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	out := dto.ToDishResponse(d)
	return &out, nil
}

func (s *DishService) List(ctx context.Context, restaurantID int64) ([]dto.DishResponse, error) {
	if _, err := s.restaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	dishes, err := s.Repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	out := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		out = append(out, dto.ToDishResponse(&dishes[i]))
	}
	return out, nil
}

func (s *DishService) Update(ctx context.Context, p authorization.Principal, restaurantID, dishID int64, in dto.UpdateDishRequest) error {
	if _, err := s.authorizedRestaurant(ctx, p, restaurantID, authorization.OperationUpdate); err != nil {
		return err
	}
	d, err := s.dish(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}
	d.Name = in.Name
	d.Description = in.Description
	d.Price = in.Price
	if err := s.Repo.Update(ctx, d); err != nil {
		return dishErr("update dish", err)
	}
	return nil
}

func (s *DishService) Delete(ctx context.Context, p authorization.Principal, restaurantID, dishID int64) error {
	if _, err := s.authorizedRestaurant(ctx, p, restaurantID, authorization.OperationDelete); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, restaurantID, dishID); err != nil {
		return dishErr("delete dish", err)
	}
	return nil
}

// DeleteAll removes every dish of the restaurant.
func (s *DishService) DeleteAll(ctx context.Context, p authorization.Principal, restaurantID int64) error {
	if _, err := s.authorizedRestaurant(ctx, p, restaurantID, authorization.OperationDelete); err != nil {
		return err
	}
	if err := s.Repo.DeleteByRestaurant(ctx, restaurantID); err != nil {
		return fmt.Errorf("delete dishes: %w", err)
	}
	return nil
}

func (s *DishService) authorizedRestaurant(ctx context.Context, p authorization.Principal, id int64, op authorization.Operation) (*entity.Restaurant, error) {
	r, err := s.restaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorization.Authorize(p, r, op); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *DishService) restaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	r, err := s.Restaurants.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return r, nil
}

func (s *DishService) dish(ctx context.Context, restaurantID, dishID int64) (*entity.Dish, error) {
	d, err := s.Repo.GetByID(ctx, restaurantID, dishID)
	if err != nil {
		return nil, dishErr("get dish", err)
	}
	return d, nil
}

func dishErr(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrDishNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
