package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PostComposeInput struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required"`
}

type PostComposeOutput struct {
	ID    int64
	Title string
}

func (s *Usecase) PostCompose(ctx context.Context, in PostComposeInput) (*PostComposeOutput, error) {
	ctx, span := s.startSpan(ctx, "PostCompose")
	defer span.End()

	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newPost := entity.NewPost{
		ID:      s.uid.Generate(),
		Title:   in.Title,
		Content: in.Content,
	}

	if err := s.repoDB.CreatePost(ctx, newPost); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("A post with that title already exists", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create post", "title", in.Title, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PostComposeOutput{
		ID:    newPost.ID,
		Title: newPost.Title,
	}, nil
}
