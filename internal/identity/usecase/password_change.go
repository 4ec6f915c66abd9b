package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PasswordChangeInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,password"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

func (s *Usecase) PasswordChange(ctx context.Context, in PasswordChangeInput) error {
	ctx, span := s.startSpan(ctx, "PasswordChange")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return goerror.NewUnauthorized("Authentication required")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.CurrentPassword) {
		slog.WarnContext(ctx, "current password mismatch", "user_id", user.ID)
		return goerror.NewUnauthorized("invalid password")
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserPassword(ctx, user.ID, string(newHash)); err != nil {
		slog.ErrorContext(ctx, "failed to update user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
