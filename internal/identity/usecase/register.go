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

type RegisterInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	ChallengeToken string
	ExpiresIn      int64 // seconds
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.repoDB.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, goerror.NewBusiness("Username already taken", goerror.CodeConflict)
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if _, err := s.repoDB.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	// Fresh secret per issuance; it never leaves the challenge store.
	challenge, err := s.totp.Issue(s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue one-time code", "error", err)
		return nil, goerror.NewServer(err)
	}

	cToken := s.oid.Generate()
	key, err := s.challengeKey(cToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, err
	}

	ttl := s.cfg.GetMinute("modules.identity.pending_ttl_minutes")
	if err := s.challenges.SaveRegistration(ctx, key, entity.PendingRegistration{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashedPassword),
		Secret:   challenge.Secret,
	}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to save pending registration", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.deliverCode(ctx, in.Email, challenge.Code, challenge.Validity, s.mailer.SendRegistrationCode)

	return &RegisterOutput{
		ChallengeToken: cToken,
		ExpiresIn:      int64(challenge.Validity / time.Second),
	}, nil
}

// deliverCode mails a one-time code to the user and the configured operator
// address. Each send is independent and fire-and-forget: a failed delivery is
// logged and never fails the request that triggered it.
func (s *Usecase) deliverCode(
	ctx context.Context,
	email, code string,
	validity time.Duration,
	send func(ctx context.Context, to, code string, validity time.Duration) error,
) {
	recipients := []string{email}
	if op := strings.TrimSpace(s.cfg.GetString("modules.identity.otp.operator_email")); op != "" {
		recipients = append(recipients, op)
	}

	bgCtx := context.WithoutCancel(ctx)
	for _, to := range recipients {
		s.goroutine.Go(bgCtx, func(ctx context.Context) error {
			if err := send(ctx, to, code, validity); err != nil {
				slog.ErrorContext(ctx, "failed to send one-time code", "to", to, "error", err)
				return nil
			}

			slog.InfoContext(ctx, "one-time code sent", "to", to)
			return nil
		})
	}
}
