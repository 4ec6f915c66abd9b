package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{ id string }

func (g fixedUUID) Generate() string { return g.id }

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "inkpress-test",
		Audiences: []string{"inkpress-test"},
		TTL:       time.Hour,
		Clock:     fixedClock{now: now},
		UUID:      fixedUUID{id: "token-id-1"},
	})
	require.NoError(t, err)
	return s
}

func TestGenerateAndVerify(t *testing.T) {
	s := newTestJWT(t, time.Now())

	token, err := s.Generate(42, "alice", "admin")
	require.NoError(t, err)

	clm, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), clm.UserID)
	assert.Equal(t, "alice", clm.Username)
	assert.Equal(t, "admin", clm.Role)
	assert.Equal(t, "token-id-1", clm.ID)
	assert.Equal(t, "42", clm.Subject)
}

func TestVerify_Expired(t *testing.T) {
	s := newTestJWT(t, time.Now().Add(-2*time.Hour))

	token, err := s.Generate(42, "alice", "user")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	s := newTestJWT(t, time.Now())
	token, err := s.Generate(42, "alice", "user")
	require.NoError(t, err)

	other, err := NewHS512(Config{
		Secret:    []byte("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"),
		Issuer:    "inkpress-test",
		Audiences: []string{"inkpress-test"},
		TTL:       time.Hour,
		Clock:     fixedClock{now: time.Now()},
		UUID:      fixedUUID{id: "x"},
	})
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}

func TestNewHS512_ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	require.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestAuthContext(t *testing.T) {
	assert.Nil(t, GetAuth(context.Background()))

	ctx := SetAuth(context.Background(), Claims{UserID: 42, Username: "alice", Role: "user"})
	clm := GetAuth(ctx)
	require.NotNil(t, clm)
	assert.Equal(t, int64(42), clm.UserID)
}
