package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PostEditInput struct {
	Title    string `validate:"required,max=200"`
	NewTitle string `validate:"required,max=200"`
	Content  string `validate:"required"`
}

func (s *Usecase) PostEdit(ctx context.Context, in PostEditInput) error {
	ctx, span := s.startSpan(ctx, "PostEdit")
	defer span.End()

	if _, err := s.requireAdmin(ctx); err != nil {
		return err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.NewTitle = strings.TrimSpace(in.NewTitle)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdatePost(ctx, entity.UpdatePost{
		Title:    in.Title,
		NewTitle: in.NewTitle,
		Content:  in.Content,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Post not found", goerror.CodeNotFound)
		}
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("A post with that title already exists", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo update post", "title", in.Title, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
