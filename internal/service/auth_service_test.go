package service

import (
	"context"
	"testing"
	"time"

	"recon_backend/internal/config"
	"recon_backend/internal/repository"
	"recon_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), repository.NewMemoryTokenRepository(), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "Ada@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)

	_, err = svc.Register(ctx, "Ada again", "ada@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	token, logged, err := svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	require.NotNil(t, logged.LastLogin)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err := svc.TokenRepo.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestCurrentIdentity(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	id, err := svc.CurrentIdentity(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", id.Name)

	_, err = svc.CurrentIdentity(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrUnauthorized)
	_, err = svc.CurrentIdentity(ctx, "")
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}
