package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
)

type TreeLookupInput struct {
	Tag string `validate:"required"`
}

type TreeLookupOutput struct {
	Tag       string
	Species   string
	Location  string
	DonorName string
	PlantedAt time.Time
}

// TreeLookup resolves a tree by its public tag, as printed on the marker.
func (s *Usecase) TreeLookup(ctx context.Context, in TreeLookupInput) (*TreeLookupOutput, error) {
	ctx, span := s.startSpan(ctx, "TreeLookup")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	tree, err := s.repoDB.GetTreeByTag(ctx, strings.TrimSpace(in.Tag))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Tree not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get tree by tag", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TreeLookupOutput{
		Tag:       tree.Tag,
		Species:   tree.Species,
		Location:  tree.Location,
		DonorName: tree.DonorName,
		PlantedAt: tree.PlantedAt,
	}, nil
}
