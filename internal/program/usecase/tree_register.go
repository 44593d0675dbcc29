package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type TreeRegisterInput struct {
	Tag       string `validate:"required"`
	Species   string `validate:"required"`
	Location  string `validate:"required"`
	DonorName string `validate:"required"`
	PaymentID string
}

// TreeRegister records a planted tree under its public tag. Admin only.
func (s *Usecase) TreeRegister(ctx context.Context, in TreeRegisterInput) error {
	ctx, span := s.startSpan(ctx, "TreeRegister")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.CreateTree(ctx, entity.Tree{
		ID:        s.uid.Generate(),
		Tag:       strings.TrimSpace(in.Tag),
		Species:   strings.TrimSpace(in.Species),
		Location:  strings.TrimSpace(in.Location),
		DonorName: strings.TrimSpace(in.DonorName),
		PaymentID: in.PaymentID,
		PlantedAt: s.clock.Now(),
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "tree tag already registered", "tag", in.Tag)
		return goerror.NewBusiness("Tree tag already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create tree", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
