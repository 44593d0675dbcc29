package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
)

type ProfileOutput struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Profile returns the account of the authenticated caller.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, clm.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account for valid token no longer exists")
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
