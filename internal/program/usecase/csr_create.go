package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type CSRInquiryCreateInput struct {
	Company       string `validate:"required"`
	ContactPerson string `validate:"required"`
	Email         string `validate:"required,email"`
	Phone         string `validate:"required"`
	Proposal      string `validate:"required"`
}

func (s *Usecase) CSRInquiryCreate(ctx context.Context, in CSRInquiryCreateInput) error {
	ctx, span := s.startSpan(ctx, "CSRInquiryCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.CreateCSRInquiry(ctx, entity.CSRInquiry{
		ID:            s.uid.Generate(),
		Company:       strings.TrimSpace(in.Company),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         strings.TrimSpace(in.Phone),
		Proposal:      in.Proposal,
		CreatedAt:     s.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create csr inquiry", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
