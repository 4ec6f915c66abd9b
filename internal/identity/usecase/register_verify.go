package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type RegisterVerifyInput struct {
	ChallengeToken string `validate:"required"`
	Code           string `validate:"required,numeric,len=6"`
}

type RegisterVerifyOutput struct {
	AccessToken string
	UserID      int64
	Username    string
	Email       string
}

func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) (*RegisterVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	key, err := s.challengeKey(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, err
	}

	// Take is destructive, so a wrong code burns the challenge.
	pending, err := s.challenges.TakeRegistration(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "registration challenge not found or expired")
		return nil, goerror.NewUnauthorized("invalid or expired verification token")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to take pending registration", "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.totp.Validate(in.Code, pending.Secret, s.clock.Now()) {
		slog.WarnContext(ctx, "verification code mismatch", "email", pending.Email)
		return nil, goerror.NewUnauthorized("incorrect verification code")
	}

	newUser := entity.NewUser{
		ID:       s.uid.Generate(),
		Username: pending.Username,
		Email:    pending.Email,
		Password: pending.Password,
		Role:     entity.UserRoleUser,
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Username or email already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "email", newUser.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	acToken, err := s.jwt.Generate(newUser.ID, newUser.Username, newUser.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", newUser.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterVerifyOutput{
		AccessToken: acToken,
		UserID:      newUser.ID,
		Username:    newUser.Username,
		Email:       newUser.Email,
	}, nil
}
