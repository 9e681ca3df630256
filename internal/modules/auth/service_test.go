package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftconnect/internal/database"
	"craftconnect/internal/domain"
	"craftconnect/internal/modules/auth"
	jwtsvc "craftconnect/internal/pkg/jwt"
	"craftconnect/internal/repository"
)

func newAuthService(t *testing.T) (*auth.Service, *jwtsvc.Service) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	j := jwtsvc.New("test-secret", time.Hour)
	return auth.NewService(repository.NewUserRepository(db), j), j
}

func TestRegister(t *testing.T) {
	svc, j := newAuthService(t)

	user, token, err := svc.Register(t.Context(), auth.RegisterRequest{
		Name:     "Asha Devi",
		Email:    "Asha@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleBuyer, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := auth.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret123"}
	_, _, err := svc.Register(t.Context(), req)
	require.NoError(t, err)

	_, _, err = svc.Register(t.Context(), req)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)

	// Email comparison is case insensitive.
	req.Email = "ASHA@example.com"
	_, _, err = svc.Register(t.Context(), req)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	registered, _, err := svc.Register(t.Context(), auth.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, token, err := svc.Login(t.Context(), auth.LoginRequest{
			Email:    "asha@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.NotEmpty(t, token)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(t.Context(), auth.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(t.Context(), auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newAuthService(t)

	registered, _, err := svc.Register(t.Context(), auth.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(t.Context(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetCurrentUser(t.Context(), 9999)
	assert.Error(t, err)
}
