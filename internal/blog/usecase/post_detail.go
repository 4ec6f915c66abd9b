package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type PostDetailInput struct {
	Title string `validate:"required,max=200"`
}

func (s *Usecase) PostDetail(ctx context.Context, in PostDetailInput) (*entity.PostDetail, error) {
	ctx, span := s.startSpan(ctx, "PostDetail")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	post, err := s.repoDB.GetPostByTitle(ctx, in.Title)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Post not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get post by title", "title", in.Title, "error", err)
		return nil, goerror.NewServer(err)
	}

	comments, err := s.repoDB.ListCommentsByPostTitle(ctx, in.Title)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list comments", "title", in.Title, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.PostDetail{
		Post:     *post,
		Comments: comments,
	}, nil
}
