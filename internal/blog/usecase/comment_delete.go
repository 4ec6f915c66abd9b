package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

type CommentDeleteInput struct {
	ID int64 `validate:"required"`
}

func (s *Usecase) CommentDelete(ctx context.Context, in CommentDeleteInput) error {
	ctx, span := s.startSpan(ctx, "CommentDelete")
	defer span.End()

	if _, err := s.requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteComment(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Comment not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo delete comment", "comment_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
