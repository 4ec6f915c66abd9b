package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (k *testKit) seedReset(t *testing.T, token string) string {
	t.Helper()

	challenge, err := k.totp.Issue(k.now)
	require.NoError(t, err)

	err = k.store.SaveReset(context.Background(), k.challengeKeyFor(t, token), entity.PendingReset{
		Email:  "alice@example.com",
		Secret: challenge.Secret,
	}, 0)
	require.NoError(t, err)

	return challenge.Code
}

func TestPasswordForgotVerify(t *testing.T) {
	kit := newTestKit(t)
	code := kit.seedReset(t, "token-1")

	out, err := kit.uc.PasswordForgotVerify(context.Background(), PasswordForgotVerifyInput{
		ChallengeToken: "token-1",
		Code:           code,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ResetToken)
	assert.Positive(t, out.ExpiresIn)

	grant, ok := kit.store.grants[kit.challengeKeyFor(t, out.ResetToken)]
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", grant.Email)
	assert.Empty(t, kit.store.resets, "challenge must be consumed")
}

func TestPasswordForgotVerify_WrongCodeBurnsChallenge(t *testing.T) {
	kit := newTestKit(t)
	code := kit.seedReset(t, "token-1")

	_, err := kit.uc.PasswordForgotVerify(context.Background(), PasswordForgotVerifyInput{
		ChallengeToken: "token-1",
		Code:           "000000",
	})
	requireStatus(t, err, http.StatusUnauthorized)
	assert.Empty(t, kit.store.grants)

	_, err = kit.uc.PasswordForgotVerify(context.Background(), PasswordForgotVerifyInput{
		ChallengeToken: "token-1",
		Code:           code,
	})
	requireStatus(t, err, http.StatusUnauthorized)
}
