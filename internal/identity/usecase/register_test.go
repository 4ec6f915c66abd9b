package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	kit := newTestKit(t)

	out, err := kit.uc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ChallengeToken)
	assert.Positive(t, out.ExpiresIn)

	// The pending state is server-held, keyed by the hashed token.
	key := kit.challengeKeyFor(t, out.ChallengeToken)
	pending, ok := kit.store.regs[key]
	require.True(t, ok, "pending registration must be stored under the hashed token")
	assert.Equal(t, "alice", pending.Username)
	assert.Equal(t, "alice@example.com", pending.Email)
	assert.NotEmpty(t, pending.Secret)
	assert.True(t, kit.bcrypt.Verify(pending.Password, "Secret123!"))

	// Mail goes out asynchronously to the user and the operator.
	require.NoError(t, kit.gm.Wait())
	require.Len(t, kit.mailer.registrations, 2)
	recipients := []string{kit.mailer.registrations[0].to, kit.mailer.registrations[1].to}
	assert.Contains(t, recipients, "alice@example.com")
	assert.Contains(t, recipients, testOperatorEmail)
}

func TestRegister_UsernameTaken(t *testing.T) {
	kit := newTestKit(t)
	kit.repo.getUserByUsername = func(_ context.Context, username string) (*entity.User, error) {
		return &entity.User{ID: 7, Username: username}, nil
	}

	_, err := kit.uc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	requireStatus(t, err, http.StatusConflict)
	assert.Empty(t, kit.store.regs)
}

func TestRegister_EmailTaken(t *testing.T) {
	kit := newTestKit(t)
	kit.repo.getUserByEmail = func(_ context.Context, email string) (*entity.User, error) {
		return &entity.User{ID: 7, Email: email}, nil
	}

	_, err := kit.uc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	requireStatus(t, err, http.StatusConflict)
}

func TestRegister_InvalidInput(t *testing.T) {
	kit := newTestKit(t)

	tests := map[string]RegisterInput{
		"bad email":      {Username: "alice", Email: "not-an-email", Password: "Secret123!"},
		"short username": {Username: "al", Email: "alice@example.com", Password: "Secret123!"},
		"short password": {Username: "alice", Email: "alice@example.com", Password: "short"},
		"username chars": {Username: "alice smith", Email: "alice@example.com", Password: "Secret123!"},
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := kit.uc.Register(context.Background(), in)
			requireStatus(t, err, http.StatusUnprocessableEntity)
		})
	}
}

func TestRegister_FreshSecretPerIssue(t *testing.T) {
	kit := newTestKit(t)

	first, err := kit.uc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	second, err := kit.uc.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	firstPending := kit.store.regs[kit.challengeKeyFor(t, first.ChallengeToken)]
	secondPending := kit.store.regs[kit.challengeKeyFor(t, second.ChallengeToken)]
	assert.NotEqual(t, firstPending.Secret, secondPending.Secret)
}
