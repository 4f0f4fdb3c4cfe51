package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	repo "github.com/oksasatya/restaurant-api/internal/domain/repository"
	"github.com/oksasatya/restaurant-api/internal/validator"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
	"github.com/oksasatya/restaurant-api/pkg/mailer"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// Publisher enqueues JSON jobs for background workers.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type AccountService struct {
	Users       repo.UserRepository
	Register    *validator.RegisterUser
	JWT         *helpers.JWTManager
	Mail        Publisher
	MailEnabled bool
	Logger      *logrus.Logger
}

func NewAccountService(users repo.UserRepository, jwt *helpers.JWTManager, mail Publisher, mailEnabled bool, logger *logrus.Logger) *AccountService {
	return &AccountService{
		Users:       users,
		Register:    validator.NewRegisterUser(users),
		JWT:         jwt,
		Mail:        mail,
		MailEnabled: mailEnabled,
		Logger:      logger,
	}
}

// RegisterUser validates, hashes and stores a new account with the default role.
func (s *AccountService) RegisterUser(ctx context.Context, in dto.RegisterUserRequest) (int64, error) {
	vs, err := s.Register.Validate(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("check email: %w", err)
	}
	if len(vs) > 0 {
		return 0, invalid(vs...)
	}
	// already checked by the validator
	dob, _ := in.BirthDate()
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		DateOfBirth:  dob,
		Nationality:  in.Nationality,
		RoleID:       entity.DefaultRoleID,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return 0, invalid(validation.FieldViolation{Field: "email", Message: "That email is taken"})
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	s.sendWelcome(ctx, u)
	return u.ID, nil
}

// Login checks credentials and issues a bearer token.
func (s *AccountService) Login(ctx context.Context, in dto.LoginRequest) (dto.LoginResponse, error) {
	u, err := s.Users.GetByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("get user: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateToken(u)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("generate token: %w", err)
	}
	return dto.LoginResponse{Token: token, ExpiresAt: exp}, nil
}

func (s *AccountService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.FullName(), "Email": u.Email},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to publish welcome email")
	}
}
