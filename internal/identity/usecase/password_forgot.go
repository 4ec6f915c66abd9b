package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

type PasswordForgotOutput struct {
	ChallengeToken string
	ExpiresIn      int64 // seconds
}

// PasswordForgot starts the reset flow. For an unknown email it reports
// success with an empty token so callers cannot probe which addresses have
// accounts.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) (*PasswordForgotOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset requested for unavailable user", "email", in.Email)
		return &PasswordForgotOutput{}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	challenge, err := s.totp.Issue(s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue one-time code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	cToken := s.oid.Generate()
	key, err := s.challengeKey(cToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, err
	}

	ttl := s.cfg.GetMinute("modules.identity.pending_ttl_minutes")
	if err := s.challenges.SaveReset(ctx, key, entity.PendingReset{
		Email:  user.Email,
		Secret: challenge.Secret,
	}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to save pending reset", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.deliverCode(ctx, user.Email, challenge.Code, challenge.Validity, s.mailer.SendResetCode)

	return &PasswordForgotOutput{
		ChallengeToken: cToken,
		ExpiresIn:      int64(challenge.Validity / time.Second),
	}, nil
}
