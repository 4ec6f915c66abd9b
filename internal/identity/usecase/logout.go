package usecase

import (
	"context"
	"log/slog"

	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	// Denylist the token ID only for its remaining lifetime; after expiry the
	// verifier rejects it anyway.
	if clm.ExpiresAt == nil {
		return nil
	}

	remaining := clm.ExpiresAt.Time.Sub(s.clock.Now())
	if remaining <= 0 {
		return nil
	}

	if err := s.challenges.RevokeToken(ctx, clm.ID, remaining); err != nil {
		slog.ErrorContext(ctx, "failed to revoke access token", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
