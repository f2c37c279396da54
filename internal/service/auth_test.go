package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumiere-beauty/storefront-api/internal/config"
	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), &config.JWT{
		Secret:   "test-secret",
		TTLHours: 1,
	})
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	auth := newAuthService(t)

	token, user, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     "Ana@Example.com",
		Password:  "hunter2pass",
		FirstName: "Ana",
		Phone:     "555-0100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.Equal(t, "ana@example.com", user.Email, "email is lowercased")
	assert.NotEqual(t, "hunter2pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2pass")))
	assert.NotEmpty(t, user.ReferralCode)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	req := &dto.RegisterRequest{Email: "ana@example.com", Password: "hunter2pass"}
	_, _, err := auth.Register(context.Background(), req)
	require.NoError(t, err)

	_, _, err = auth.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginAndResolveTokenRoundTrip(t *testing.T) {
	auth := newAuthService(t)

	_, registered, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter2pass",
	})
	require.NoError(t, err)

	token, _, err := auth.Login(context.Background(), "ANA@example.com", "hunter2pass")
	require.NoError(t, err)

	resolved, err := auth.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
	assert.Equal(t, registered.Email, resolved.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth := newAuthService(t)

	_, _, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter2pass",
	})
	require.NoError(t, err)

	_, _, err = auth.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(context.Background(), "nobody@example.com", "hunter2pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.ResolveToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	auth := newAuthService(t)

	_, user, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     "ana@example.com",
		Password:  "hunter2pass",
		FirstName: "Ana",
		Phone:     "555-0100",
	})
	require.NoError(t, err)

	newName := "Anastasia"
	updated, err := auth.UpdateProfile(context.Background(), user, &dto.UpdateProfileRequest{
		FirstName: &newName,
		Favorites: []string{"rose-serum"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Anastasia", updated.FirstName)
	assert.Equal(t, "555-0100", updated.Phone, "omitted fields keep their value")
	assert.Equal(t, []string{"rose-serum"}, updated.Favorites)
}
