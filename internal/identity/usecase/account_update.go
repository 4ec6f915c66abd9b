package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type AccountUpdateInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
}

func (s *Usecase) AccountUpdate(ctx context.Context, in AccountUpdateInput) error {
	ctx, span := s.startSpan(ctx, "AccountUpdate")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.UpdateUserAccount(ctx, entity.UpdateAccount{
		ID:       clm.UserID,
		Username: in.Username,
		Email:    in.Email,
	}); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Username or email already taken", goerror.CodeConflict)
		}
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewUnauthorized("Authentication required")
		}

		slog.ErrorContext(ctx, "failed to repo update user account", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
