package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/account/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
)

type SignupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) error {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	passwordHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	err = s.repoDB.CreateUser(ctx, entity.User{
		ID:        s.uid.Generate(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  string(passwordHash),
		CreatedAt: s.clock.Now(),
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "signup with existing email")
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
