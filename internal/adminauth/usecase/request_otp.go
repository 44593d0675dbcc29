package usecase

import (
	"context"
	"log/slog"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
)

type RequestOTPInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RequestOTP validates the admin credentials, stores a fresh one-time code,
// and emails it to the admin mailbox. Issuing a new code replaces any
// pending challenge for the same email.
//
// When the email cannot be dispatched the stored challenge is kept, so a
// code that happened to leave the SMTP server despite the error stays
// verifiable.
func (s *Usecase) RequestOTP(ctx context.Context, in RequestOTPInput) error {
	ctx, span := s.startSpan(ctx, "RequestOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.checkCredentials(in.Email, in.Password) {
		slog.WarnContext(ctx, "admin credential check failed")
		return goerror.NewBusiness("Invalid admin credentials", goerror.CodeUnauthorized)
	}

	code, err := generateCode()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return goerror.NewServer(err)
	}

	s.mu.Lock()
	err = s.store.Put(ctx, entity.Challenge{
		Email:    in.Email,
		Code:     code,
		IssuedAt: s.clock.Now(),
		Attempts: 0,
	})
	s.mu.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "failed to store otp challenge", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.Send(ctx, buildOTPMessage(in.Email, code)); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
