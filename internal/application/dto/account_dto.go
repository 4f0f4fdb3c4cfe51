package dto

import (
	"strings"
	"time"
)

// RegisterUserRequest is decoded by the handler and checked by the registration validator.
type RegisterUserRequest struct {
	Email           string     `json:"email" validate:"required,email"`
	Password        string     `json:"password" validate:"required,pwd"`
	ConfirmPassword string     `json:"confirmPassword" validate:"eqfield=Password"`
	FirstName       string     `json:"firstName" validate:"max=50"`
	LastName        string     `json:"lastName" validate:"max=50"`
	DateOfBirth     string     `json:"dateOfBirth"`
	Nationality     string     `json:"nationality" validate:"max=50"`
}

// BirthDateLayout is the calendar-date form of dateOfBirth; RFC3339 is accepted too.
const BirthDateLayout = "2006-01-02"

// BirthDate parses DateOfBirth. An empty value means it was not supplied.
func (r RegisterUserRequest) BirthDate() (*time.Time, error) {
	s := strings.TrimSpace(r.DateOfBirth)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
