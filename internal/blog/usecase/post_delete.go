package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PostDeleteInput struct {
	Title string `validate:"required,max=200"`
}

func (s *Usecase) PostDelete(ctx context.Context, in PostDeleteInput) error {
	ctx, span := s.startSpan(ctx, "PostDelete")
	defer span.End()

	if _, err := s.requireAdmin(ctx); err != nil {
		return err
	}

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeletePost(ctx, in.Title); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Post not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo delete post", "title", in.Title, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
