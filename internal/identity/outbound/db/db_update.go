package db

import (
	"context"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
)

func (s *DB) UpdateUserPassword(ctx context.Context, userID int64, hashed string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE users SET password = $2, updated_at = now() WHERE id = $1`,
		userID, hashed,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) UpdateUserPasswordByEmail(ctx context.Context, email, hashed string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPasswordByEmail")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE users SET password = $2, updated_at = now() WHERE email = $1`,
		email, hashed,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) UpdateUserAccount(ctx context.Context, data entity.UpdateAccount) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserAccount")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE users SET username = $2, email = $3, updated_at = now() WHERE id = $1`,
		data.ID, data.Username, data.Email,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
