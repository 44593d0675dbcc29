package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type ContactCreateInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// ContactCreate stores a contact form submission and notifies the admin
// mailbox in the background. The submission succeeds even when the
// notification cannot be sent; the message is already persisted.
func (s *Usecase) ContactCreate(ctx context.Context, in ContactCreateInput) error {
	ctx, span := s.startSpan(ctx, "ContactCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	contact := entity.Contact{
		ID:        s.uid.Generate(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Message:   in.Message,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateContact(ctx, contact); err != nil {
		slog.ErrorContext(ctx, "failed to repo create contact", "error", err)
		return goerror.NewServer(err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.mailer.Send(ctx, buildContactNotification(s.cfg.GetString("admin.email"), contact)); err != nil {
			slog.WarnContext(ctx, "failed to send contact notification", "error", err)
			return err
		}
		return nil
	})

	return nil
}
