package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/idempotency"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type DonationCreateInput struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Amount    int64  `validate:"required,gt=0"`
	PaymentID string `validate:"required"`
}

// DonationCreate records a completed payment. Payment gateways retry their
// callbacks, so the write is keyed on the payment ID and executes at most
// once; replays are rejected without touching the database.
func (s *Usecase) DonationCreate(ctx context.Context, in DonationCreateInput) error {
	ctx, span := s.startSpan(ctx, "DonationCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.idemp.Exec(ctx, "donation:"+in.PaymentID, func(ctx context.Context) error {
		return s.repoDB.CreateDonation(ctx, entity.Donation{
			ID:        s.uid.Generate(),
			Name:      strings.TrimSpace(in.Name),
			Email:     strings.ToLower(strings.TrimSpace(in.Email)),
			Amount:    in.Amount,
			PaymentID: in.PaymentID,
			CreatedAt: s.clock.Now(),
		})
	}, idempotency.WithStateTTL(s.cfg.GetHour("modules.program.donation_dedup_ttl_hours")))

	switch {
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		slog.WarnContext(ctx, "duplicate donation callback", "payment_id", in.PaymentID)
		return goerror.NewBusiness("Donation already recorded", goerror.CodeConflict)

	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		slog.WarnContext(ctx, "concurrent donation callback", "payment_id", in.PaymentID)
		return goerror.NewBusiness("Donation is being processed", goerror.CodeTooManyRequest)

	case errors.Is(err, idempotency.ErrAlreadyFailed):
		slog.WarnContext(ctx, "retrying previously failed donation", "payment_id", in.PaymentID)
		return goerror.NewBusiness("Donation could not be recorded, try again later", goerror.CodeTooManyRequest)

	case errors.Is(err, goerror.ErrConflict):
		slog.WarnContext(ctx, "donation payment id already stored", "payment_id", in.PaymentID)
		return goerror.NewBusiness("Donation already recorded", goerror.CodeConflict)

	case err != nil:
		slog.ErrorContext(ctx, "failed to record donation", "payment_id", in.PaymentID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
