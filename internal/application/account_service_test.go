package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/infrastructure/memory"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
	"github.com/oksasatya/restaurant-api/pkg/mailer"
)

func init() { helpers.PasswordCost = bcrypt.MinCost }

type publishStub struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *publishStub) PublishJSON(_ context.Context, body any) error {
	if job, ok := body.(mailer.EmailJob); ok {
		p.jobs = append(p.jobs, job)
	}
	return p.err
}

func newAccountService(pub *publishStub, mailEnabled bool) (*AccountService, *memory.Store) {
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("secret", "restaurant-api-test", time.Hour)
	return NewAccountService(store.Users(), jwt, pub, mailEnabled, helpers.NewNopLogger()), store
}

func registration(email string) dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Ann",
		LastName:        "Lee",
	}
}

func TestAccountService_RegisterStoresHashedUser(t *testing.T) {
	ctx := context.Background()
	pub := &publishStub{}
	svc, store := newAccountService(pub, true)

	id, err := svc.RegisterUser(ctx, registration("ann@example.com"))
	require.NoError(t, err)

	u, err := store.Users().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.RoleName)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "password123"))

	require.Len(t, pub.jobs, 1)
	assert.Equal(t, "ann@example.com", pub.jobs[0].To)
	assert.Equal(t, mailer.TemplateWelcome, pub.jobs[0].Template)
	assert.Equal(t, "Ann Lee", pub.jobs[0].Data["Name"])
}

func TestAccountService_RegisterRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(nil, false)
	_, err := svc.RegisterUser(ctx, registration("ann@example.com"))
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, registration("ann@example.com"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Violations[0].Field)
	assert.Equal(t, "That email is taken", verr.Violations[0].Message)
}

func TestAccountService_RegisterRejectsMismatch(t *testing.T) {
	svc, _ := newAccountService(nil, false)
	in := registration("ann@example.com")
	in.ConfirmPassword = "password124"

	_, err := svc.RegisterUser(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confirmPassword", verr.Violations[0].Field)
}

func TestAccountService_MailFailureDoesNotFailRegistration(t *testing.T) {
	pub := &publishStub{err: errors.New("broker down")}
	svc, _ := newAccountService(pub, true)

	_, err := svc.RegisterUser(context.Background(), registration("ann@example.com"))
	assert.NoError(t, err)
}

func TestAccountService_MailDisabled(t *testing.T) {
	pub := &publishStub{}
	svc, _ := newAccountService(pub, false)

	_, err := svc.RegisterUser(context.Background(), registration("ann@example.com"))
	require.NoError(t, err)
	assert.Empty(t, pub.jobs)
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(nil, false)
	id, err := svc.RegisterUser(ctx, registration("ann@example.com"))
	require.NoError(t, err)

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "ANN@example.com", Password: "password123"})
	require.NoError(t, err)
	claims, err := svc.JWT.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, "Ann Lee", claims.Name)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "nope1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
