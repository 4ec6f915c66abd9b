package usecase

import (
	"context"
	"log/slog"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

func (s *Usecase) PostList(ctx context.Context) ([]entity.Post, error) {
	ctx, span := s.startSpan(ctx, "PostList")
	defer span.End()

	posts, err := s.repoDB.ListPosts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list posts", "error", err)
		return nil, goerror.NewServer(err)
	}

	return posts, nil
}
