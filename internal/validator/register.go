// Package validator checks account registration payloads and listing queries
// before they reach the services.
package validator

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// MaxAgeYears bounds a plausible date of birth.
const MaxAgeYears = 120

// EmailChecker reports whether an email already belongs to a user.
type EmailChecker interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegisterUser validates registration payloads. The uniqueness lookup only runs
// once every cheap syntactic rule has passed.
type RegisterUser struct {
	v     *validator.Validate
	users EmailChecker
	now   func() time.Time
}

func NewRegisterUser(users EmailChecker) *RegisterUser {
	return &RegisterUser{v: validation.New(), users: users, now: time.Now}
}

// Validate returns the violations for req. A non-nil error means the lookup failed.
func (rv *RegisterUser) Validate(ctx context.Context, req dto.RegisterUserRequest) ([]validation.FieldViolation, error) {
	var out []validation.FieldViolation
	if err := rv.v.Struct(req); err != nil {
		out = append(out, validation.Violations(err)...)
	}
	dob, err := req.BirthDate()
	switch {
	case err != nil:
		out = append(out, validation.FieldViolation{Field: "dateOfBirth", Message: "must be a date in YYYY-MM-DD format"})
	case dob != nil:
		if msg := rv.checkBirthDate(*dob); msg != "" {
			out = append(out, validation.FieldViolation{Field: "dateOfBirth", Message: msg})
		}
	}
	if len(out) > 0 {
		return out, nil
	}

	taken, err := rv.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return []validation.FieldViolation{{Field: "email", Message: "That email is taken"}}, nil
	}
	return nil, nil
}

func (rv *RegisterUser) checkBirthDate(dob time.Time) string {
	now := rv.now()
	if dob.After(now) {
		return "must not be in the future"
	}
	if dob.Before(now.AddDate(-MaxAgeYears, 0, 0)) {
		return "must describe an age of at most 120 years"
	}
	return ""
}
