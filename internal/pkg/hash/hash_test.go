package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt(t *testing.T) {
	b := NewBcrypt(4, "")

	hashed, err := b.Hash("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", string(hashed))

	assert.True(t, b.Verify(string(hashed), "Secret123!"))
	assert.False(t, b.Verify(string(hashed), "wrong"))
}

func TestBcrypt_Pepper(t *testing.T) {
	peppered := NewBcrypt(4, "pepper")
	plain := NewBcrypt(4, "")

	hashed, err := peppered.Hash("Secret123!")
	require.NoError(t, err)

	assert.True(t, peppered.Verify(string(hashed), "Secret123!"))
	assert.False(t, plain.Verify(string(hashed), "Secret123!"), "pepper must participate in the hash")
}

func TestHMACSHA256(t *testing.T) {
	h := NewHMACSHA256("secret-key")

	first, err := h.Hash("challenge-token")
	require.NoError(t, err)
	second, err := h.Hash("challenge-token")
	require.NoError(t, err)

	assert.Equal(t, first, second, "HMAC must be deterministic for key lookups")
	assert.True(t, h.Verify(string(first), "challenge-token"))
	assert.False(t, h.Verify(string(first), "other-token"))

	other := NewHMACSHA256("different-key")
	otherSum, err := other.Hash("challenge-token")
	require.NoError(t, err)
	assert.NotEqual(t, first, otherSum)
}
