package db

import (
	"context"

	"github.com/inkpress/inkpress/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO users (id, username, email, password, role)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Password, int16(user.Role),
	)

	err = s.mapError(err)
	return err
}
