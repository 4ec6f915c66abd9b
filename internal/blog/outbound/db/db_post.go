package db

import (
	"context"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

func (s *DB) ListPosts(ctx context.Context) (posts []entity.Post, err error) {
	ctx, span := s.startSpan(ctx, "ListPosts")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, s.mapError(err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return posts, nil
}

func (s *DB) GetPostByTitle(ctx context.Context, title string) (post *entity.Post, err error) {
	ctx, span := s.startSpan(ctx, "GetPostByTitle")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + postColumns + ` FROM posts WHERE title = $1`

	post, err = scanPost(s.conn.QueryRow(ctx, query, title))
	if err != nil {
		return nil, s.mapError(err)
	}

	return post, nil
}

func (s *DB) CreatePost(ctx context.Context, post entity.NewPost) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePost")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO posts (id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())`

	_, err = s.conn.Exec(ctx, query, post.ID, post.Title, post.Content)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) UpdatePost(ctx context.Context, data entity.UpdatePost) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePost")
	defer func() { s.endSpan(span, err) }()

	// Comments follow the rename through the FK cascade on post_title.
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE title = $1`

	tag, err := s.conn.Exec(ctx, query, data.Title, data.NewTitle, data.Content)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeletePost(ctx context.Context, title string) (err error) {
	ctx, span := s.startSpan(ctx, "DeletePost")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM posts WHERE title = $1`

	tag, err := s.conn.Exec(ctx, query, title)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
