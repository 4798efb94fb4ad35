package service_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/apierror"
	"storefront/internal/config"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func seedAuthUser(t *testing.T, mutate func(*model.User)) *stubUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.User{
		Name:      "Ada",
		Surname:   "Lovelace",
		Email:     "ada@example.com",
		Password:  string(hash),
		Validated: true,
		RoleID:    1,
	}
	if mutate != nil {
		mutate(&u)
	}
	return newStubUserRepo(u)
}

func TestLoginSuccess(t *testing.T) {
	svc := service.NewAuthService(seedAuthUser(t, nil), newStubRoleRepo("admin"), testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := service.NewAuthService(seedAuthUser(t, nil), newStubRoleRepo("admin"), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apierror.StatusOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), newStubRoleRepo("admin"), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "x"})
	require.Error(t, err)
	// same answer as a wrong password: never reveal whether the account exists
	assert.Equal(t, http.StatusUnauthorized, apierror.StatusOf(err))
}

func TestLoginLockedAccount(t *testing.T) {
	users := seedAuthUser(t, func(u *model.User) { u.Locked = true })
	svc := service.NewAuthService(users, newStubRoleRepo("admin"), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
}

func TestLoginUnvalidatedAccount(t *testing.T) {
	users := seedAuthUser(t, func(u *model.User) { u.Validated = false })
	svc := service.NewAuthService(users, newStubRoleRepo("admin"), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
}

func TestRefreshRoundTrip(t *testing.T) {
	svc := service.NewAuthService(seedAuthUser(t, nil), newStubRoleRepo("admin"), testConfig())
	ctx := context.Background()

	first, err := svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), newStubRoleRepo("admin"), testConfig())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apierror.StatusOf(err))
}

func TestValidateFlipsFlagAndClearsToken(t *testing.T) {
	token := "validation-token-123"
	users := seedAuthUser(t, func(u *model.User) {
		u.Validated = false
		u.Token = &token
	})
	svc := service.NewAuthService(users, newStubRoleRepo("admin"), testConfig())
	ctx := context.Background()

	resp, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, resp.Validated)

	stored, err := users.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Validated)
	assert.Nil(t, stored.Token)

	// token is single use
	_, err = svc.Validate(ctx, token)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestValidateUnknownToken(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), newStubRoleRepo("admin"), testConfig())

	_, err := svc.Validate(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
