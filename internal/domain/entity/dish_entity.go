package entity

import "time"

// Dish belongs to exactly one restaurant and is removed together with it.
type Dish struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	RestaurantID int64
	CreatedAt    time.Time
}
