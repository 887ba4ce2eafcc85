package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/x3-tracker/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthService() AuthService {
	return NewAuthService(newFakeUserRepo(), testJWTSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, domain.TierFoundation, user.Tier)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.False(t, user.HasStarted())

	_, err = svc.Register(ctx, "Alice Again", "alice@example.com", "anotherpassword")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// Unknown emails fail the same way, so login can't probe for accounts.
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	token, user, err := svc.Login(ctx, "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.TierFoundation, claims.Tier)
}
