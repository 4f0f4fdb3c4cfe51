package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrRestaurantNotFound = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrDishNotFound       = fmt.Errorf("dish %w", ErrNotFound)
	ErrForbidden          = authorization.ErrForbidden
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnavailable        = errors.New("dependency not configured")
)

// ValidationError carries client-correctable field violations.
type ValidationError struct {
	Violations []validation.FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	v := e.Violations[0]
	if len(e.Violations) == 1 {
		return fmt.Sprintf("validation failed: %s %s", v.Field, v.Message)
	}
	return fmt.Sprintf("validation failed: %s %s (and %d more)", v.Field, v.Message, len(e.Violations)-1)
}

func invalid(vs ...validation.FieldViolation) error {
	return &ValidationError{Violations: vs}
}
