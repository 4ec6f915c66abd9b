package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type CommentAddInput struct {
	PostTitle string `validate:"required,max=200"`
	Body      string `validate:"required,max=2000"`
}

type CommentAddOutput struct {
	ID     int64
	Author string
}

func (s *Usecase) CommentAdd(ctx context.Context, in CommentAddInput) (*CommentAddOutput, error) {
	ctx, span := s.startSpan(ctx, "CommentAdd")
	defer span.End()

	// The author is always the verified identity, never a request field.
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.PostTitle = strings.TrimSpace(in.PostTitle)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.repoDB.GetPostByTitle(ctx, in.PostTitle); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Post not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get post by title", "title", in.PostTitle, "error", err)
		return nil, goerror.NewServer(err)
	}

	comment := entity.NewComment{
		ID:        s.uid.Generate(),
		PostTitle: in.PostTitle,
		Body:      in.Body,
		Author:    clm.Username,
	}

	if err := s.repoDB.CreateComment(ctx, comment); err != nil {
		slog.ErrorContext(ctx, "failed to repo create comment", "title", in.PostTitle, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CommentAddOutput{
		ID:     comment.ID,
		Author: comment.Author,
	}, nil
}
