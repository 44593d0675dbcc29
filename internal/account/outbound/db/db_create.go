package db

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/account/entity"
)

const queryCreateUser = `
INSERT INTO account_users (id, name, email, password, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser,
		user.ID, user.Name, user.Email, user.Password, user.CreatedAt)
	err = s.mapError(err)
	return err
}
