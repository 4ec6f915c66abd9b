package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PasswordResetInput struct {
	ResetToken      string `validate:"required"`
	NewPassword     string `validate:"required,password"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	key, err := s.challengeKey(in.ResetToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash reset token", "error", err)
		return err
	}

	grant, err := s.challenges.TakeResetGrant(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewUnauthorized("invalid or expired reset token")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to take reset grant", "error", err)
		return goerror.NewServer(err)
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserPasswordByEmail(ctx, grant.Email, string(newHash)); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewUnauthorized("invalid or expired reset token")
		}

		slog.ErrorContext(ctx, "failed to update user password", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
