package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
)

type DishRepository struct {
	s *Store
}

func (r *DishRepository) Create(_ context.Context, d *entity.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[d.RestaurantID]; !ok {
		return repository.ErrNotFound
	}
	r.s.dishSeq++
	d.ID = r.s.dishSeq
	d.CreatedAt = r.s.now()
	r.s.dishes[d.ID] = *d
	return nil
}

func (r *DishRepository) GetByID(_ context.Context, restaurantID, dishID int64) (*entity.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.dishes[dishID]
	if !ok || d.RestaurantID != restaurantID {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *DishRepository) ListByRestaurant(_ context.Context, restaurantID int64) ([]entity.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Dish, 0)
	for _, d := range r.s.dishes {
		if d.RestaurantID == restaurantID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DishRepository) Update(_ context.Context, d *entity.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.dishes[d.ID]
	if !ok || cur.RestaurantID != d.RestaurantID {
		return repository.ErrNotFound
	}
	cur.Name = d.Name
	cur.Description = d.Description
	cur.Price = d.Price
	r.s.dishes[d.ID] = cur
	d.CreatedAt = cur.CreatedAt
	return nil
}

func (r *DishRepository) Delete(_ context.Context, restaurantID, dishID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.dishes[dishID]
	if !ok || d.RestaurantID != restaurantID {
		return repository.ErrNotFound
	}
	delete(r.s.dishes, dishID)
	return nil
}

func (r *DishRepository) DeleteByRestaurant(_ context.Context, restaurantID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, d := range r.s.dishes {
		if d.RestaurantID == restaurantID {
			delete(r.s.dishes, id)
		}
	}
	return nil
}

var _ repository.DishRepository = (*DishRepository)(nil)
