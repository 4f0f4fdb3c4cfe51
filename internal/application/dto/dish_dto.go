package dto

import "github.com/oksasatya/restaurant-api/internal/domain/entity"

type CreateDishRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateDishRequest = CreateDishRequest

type DishResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func ToDishResponse(d *entity.Dish) DishResponse {
	return DishResponse{ID: d.ID, Name: d.Name, Description: d.Description, Price: d.Price}
}
