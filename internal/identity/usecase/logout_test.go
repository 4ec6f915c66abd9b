package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout(t *testing.T) {
	kit := newTestKit(t)
	ctx := jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			ID:        "token-id-1",
			ExpiresAt: libJWT.NewNumericDate(kit.now.Add(30 * time.Minute)),
		},
		UserID: 42,
	})

	require.NoError(t, kit.uc.Logout(ctx))

	ttl, ok := kit.store.revoked["token-id-1"]
	require.True(t, ok, "token ID must be denylisted")
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestLogout_Unauthenticated(t *testing.T) {
	kit := newTestKit(t)

	err := kit.uc.Logout(context.Background())
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLogout_AlreadyExpiredToken(t *testing.T) {
	kit := newTestKit(t)
	ctx := jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			ID:        "token-id-1",
			ExpiresAt: libJWT.NewNumericDate(kit.now.Add(-time.Minute)),
		},
		UserID: 42,
	})

	require.NoError(t, kit.uc.Logout(ctx))
	assert.Empty(t, kit.store.revoked, "expired tokens need no denylist entry")
}
