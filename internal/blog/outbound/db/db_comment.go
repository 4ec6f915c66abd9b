package db

import (
	"context"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

func (s *DB) ListCommentsByPostTitle(ctx context.Context, title string) (comments []entity.Comment, err error) {
	ctx, span := s.startSpan(ctx, "ListCommentsByPostTitle")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, post_title, body, author, created_at
		FROM comments
		WHERE post_title = $1
		ORDER BY created_at ASC`

	rows, err := s.conn.Query(ctx, query, title)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.PostTitle, &c.Body, &c.Author, &c.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return comments, nil
}

func (s *DB) CreateComment(ctx context.Context, comment entity.NewComment) (err error) {
	ctx, span := s.startSpan(ctx, "CreateComment")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO comments (id, post_title, body, author, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	_, err = s.conn.Exec(ctx, query, comment.ID, comment.PostTitle, comment.Body, comment.Author)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) DeleteComment(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteComment")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM comments WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
