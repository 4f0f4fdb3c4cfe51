package postgres

import (
	"context"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
)

type DishRepository struct {
	db DBTX
}

func NewDishRepository(db DBTX) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) Create(ctx context.Context, d *entity.Dish) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO dishes (name, description, price, restaurant_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, d.Name, d.Description, d.Price, d.RestaurantID)

	return mapErr(row.Scan(&d.ID, &d.CreatedAt))
}

func (r *DishRepository) GetByID(ctx context.Context, restaurantID, dishID int64) (*entity.Dish, error) {
	d := &entity.Dish{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, restaurant_id, created_at
		FROM dishes
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, dishID).Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.RestaurantID, &d.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return d, nil
}

func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Dish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, restaurant_id, created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Dish{}
	for rows.Next() {
		var d entity.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.RestaurantID, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DishRepository) Update(ctx context.Context, d *entity.Dish) error {
	res, err := r.db.Exec(ctx, `
		UPDATE dishes SET name = $1, description = $2, price = $3
		WHERE restaurant_id = $4 AND id = $5
	`, d.Name, d.Description, d.Price, d.RestaurantID, d.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, restaurantID, dishID int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM dishes WHERE restaurant_id = $1 AND id = $2`, restaurantID, dishID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DishRepository) DeleteByRestaurant(ctx context.Context, restaurantID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM dishes WHERE restaurant_id = $1`, restaurantID)
	return err
}

var _ repository.DishRepository = (*DishRepository)(nil)
