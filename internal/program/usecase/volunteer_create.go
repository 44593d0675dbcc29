package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type VolunteerCreateInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Interest string `validate:"required"`
}

func (s *Usecase) VolunteerCreate(ctx context.Context, in VolunteerCreateInput) error {
	ctx, span := s.startSpan(ctx, "VolunteerCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.CreateVolunteer(ctx, entity.Volunteer{
		ID:        s.uid.Generate(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Interest:  in.Interest,
		CreatedAt: s.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create volunteer", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
