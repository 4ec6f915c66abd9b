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

func TestAccountUpdate(t *testing.T) {
	kit := newTestKit(t)

	err := kit.uc.AccountUpdate(kit.authCtx(42, "alice", "user"), AccountUpdateInput{
		Username: "alice_new",
		Email:    "Alice.New@Example.com",
	})
	require.NoError(t, err)

	require.Len(t, kit.repo.updates, 1)
	assert.Equal(t, entity.UpdateAccount{
		ID:       42,
		Username: "alice_new",
		Email:    "alice.new@example.com",
	}, kit.repo.updates[0])
}

func TestAccountUpdate_Taken(t *testing.T) {
	kit := newTestKit(t)
	kit.repo.updateUserAccount = func(context.Context, entity.UpdateAccount) error {
		return goerror.ErrConflict
	}

	err := kit.uc.AccountUpdate(kit.authCtx(42, "alice", "user"), AccountUpdateInput{
		Username: "taken",
		Email:    "taken@example.com",
	})
	requireStatus(t, err, http.StatusConflict)
}

func TestAccountUpdate_Unauthenticated(t *testing.T) {
	kit := newTestKit(t)

	err := kit.uc.AccountUpdate(context.Background(), AccountUpdateInput{
		Username: "alice",
		Email:    "alice@example.com",
	})
	requireStatus(t, err, http.StatusUnauthorized)
}
