package services

import (
	"testing"
	"time"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repo := repository.NewUserRepository(setupTestDB(t))
	return NewAuthService(repo, "test-secret", time.Hour)
}

func sampleRegistration() RegisterInput {
	return RegisterInput{
		Username:  "maria",
		Password:  "secret123",
		Email:     "Maria@Example.com",
		FirstName: "Maria",
		LastName:  "Lopez",
	}
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Register(sampleRegistration())
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, "maria@example.com", user.Email, "email is normalized to lower case")
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.NotEmpty(t, token)
	assert.Zero(t, user.LoyaltyPoints)
	assert.Zero(t, user.TotalVisits)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(sampleRegistration())
	require.NoError(t, err)

	dup := sampleRegistration()
	dup.Username = "other"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(sampleRegistration())
	require.NoError(t, err)

	dup := sampleRegistration()
	dup.Email = "other@example.com"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	_, _, err := svc.Register(sampleRegistration())
	require.NoError(t, err)

	token, user, err := svc.Login("maria@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "maria", user.Username)

	_, _, err = svc.Login("maria@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserMissing(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.CurrentUser(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
