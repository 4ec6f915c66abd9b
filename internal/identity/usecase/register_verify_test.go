package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (k *testKit) seedRegistration(t *testing.T, token string) string {
	t.Helper()

	challenge, err := k.totp.Issue(k.now)
	require.NoError(t, err)

	hashed, err := k.bcrypt.Hash("Secret123!")
	require.NoError(t, err)

	err = k.store.SaveRegistration(context.Background(), k.challengeKeyFor(t, token), entity.PendingRegistration{
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hashed),
		Secret:   challenge.Secret,
	}, 0)
	require.NoError(t, err)

	return challenge.Code
}

func TestRegisterVerify(t *testing.T) {
	kit := newTestKit(t)
	code := kit.seedRegistration(t, "token-1")

	out, err := kit.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
		ChallengeToken: "token-1",
		Code:           code,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.NotZero(t, out.UserID)

	require.Len(t, kit.repo.created, 1)
	assert.Equal(t, entity.UserRoleUser, kit.repo.created[0].Role)

	clm, err := kit.jwt.Verify(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, clm.UserID)
	assert.Equal(t, "alice", clm.Username)
	assert.Equal(t, "user", clm.Role)

	assert.Empty(t, kit.store.regs, "challenge must be consumed")
}

func TestRegisterVerify_WrongCodeBurnsChallenge(t *testing.T) {
	kit := newTestKit(t)
	code := kit.seedRegistration(t, "token-1")

	_, err := kit.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
		ChallengeToken: "token-1",
		Code:           "000000",
	})
	requireStatus(t, err, http.StatusUnauthorized)
	assert.Empty(t, kit.repo.created)

	// The correct code no longer works: one attempt per challenge.
	_, err = kit.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
		ChallengeToken: "token-1",
		Code:           code,
	})
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRegisterVerify_UnknownToken(t *testing.T) {
	kit := newTestKit(t)

	_, err := kit.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
		ChallengeToken: "never-issued",
		Code:           "123456",
	})
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRegisterVerify_RaceLostToDuplicate(t *testing.T) {
	kit := newTestKit(t)
	code := kit.seedRegistration(t, "token-1")
	kit.repo.createUser = func(context.Context, entity.NewUser) error {
		return goerror.ErrConflict
	}

	_, err := kit.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
		ChallengeToken: "token-1",
		Code:           code,
	})
	requireStatus(t, err, http.StatusConflict)
}
