package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordReset(t *testing.T) {
	kit := newTestKit(t)
	err := kit.store.SaveResetGrant(context.Background(), kit.challengeKeyFor(t, "grant-1"),
		entity.ResetGrant{Email: "alice@example.com"}, 0)
	require.NoError(t, err)

	err = kit.uc.PasswordReset(context.Background(), PasswordResetInput{
		ResetToken:      "grant-1",
		NewPassword:     "NewSecret123!",
		ConfirmPassword: "NewSecret123!",
	})
	require.NoError(t, err)

	hashed, ok := kit.repo.pwdByWho["alice@example.com"]
	require.True(t, ok)
	assert.True(t, kit.bcrypt.Verify(hashed, "NewSecret123!"))
	assert.Empty(t, kit.store.grants, "grant must be consumed")
}

func TestPasswordReset_PasswordMismatch(t *testing.T) {
	kit := newTestKit(t)

	err := kit.uc.PasswordReset(context.Background(), PasswordResetInput{
		ResetToken:      "grant-1",
		NewPassword:     "NewSecret123!",
		ConfirmPassword: "Different123!",
	})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestPasswordReset_UnknownToken(t *testing.T) {
	kit := newTestKit(t)

	err := kit.uc.PasswordReset(context.Background(), PasswordResetInput{
		ResetToken:      "never-issued",
		NewPassword:     "NewSecret123!",
		ConfirmPassword: "NewSecret123!",
	})
	requireStatus(t, err, http.StatusUnauthorized)
}
