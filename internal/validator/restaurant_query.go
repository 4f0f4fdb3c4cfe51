package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// RestaurantQuery validates listing parameters: page size must be 5, 10 or 15
// and page number at least 1. It never touches the store.
type RestaurantQuery struct {
	v *validator.Validate
}

func NewRestaurantQuery() *RestaurantQuery {
	return &RestaurantQuery{v: validation.New()}
}

func (qv *RestaurantQuery) Validate(q dto.RestaurantQuery) []validation.FieldViolation {
	if err := qv.v.Struct(q); err != nil {
		return validation.Violations(err)
	}
	return nil
}
