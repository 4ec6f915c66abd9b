package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PasswordForgotVerifyInput struct {
	ChallengeToken string `validate:"required"`
	Code           string `validate:"required,numeric,len=6"`
}

type PasswordForgotVerifyOutput struct {
	ResetToken string
	ExpiresIn  int64 // seconds
}

func (s *Usecase) PasswordForgotVerify(ctx context.Context, in PasswordForgotVerifyInput) (*PasswordForgotVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordForgotVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	key, err := s.challengeKey(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, err
	}

	pending, err := s.challenges.TakeReset(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "reset challenge not found or expired")
		return nil, goerror.NewUnauthorized("invalid or expired reset token")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to take pending reset", "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.totp.Validate(in.Code, pending.Secret, s.clock.Now()) {
		slog.WarnContext(ctx, "reset code mismatch", "email", pending.Email)
		return nil, goerror.NewUnauthorized("incorrect verification code")
	}

	grantToken := s.oid.Generate()
	grantKey, err := s.challengeKey(grantToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash grant token", "error", err)
		return nil, err
	}

	ttl := s.cfg.GetMinute("modules.identity.reset_grant_ttl_minutes")
	if err := s.challenges.SaveResetGrant(ctx, grantKey, entity.ResetGrant{Email: pending.Email}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to save reset grant", "email", pending.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PasswordForgotVerifyOutput{
		ResetToken: grantToken,
		ExpiresIn:  int64(ttl.Seconds()),
	}, nil
}
