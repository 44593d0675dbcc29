package db

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/account/entity"
)

const queryGetUserByEmail = `
SELECT id, name, email, password, created_at
FROM account_users
WHERE email = $1`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var u entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &u, nil
}
