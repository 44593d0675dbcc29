package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	// Only presence is validated here. A malformed code falls through to
	// the comparison and is counted as a failed attempt like any mismatch.
	OTP string `validate:"required"`
}

type VerifyOTPOutput struct {
	Token string
}

// VerifyOTP checks the submitted code against the pending challenge and, on
// success, issues the admin session token.
//
// The checks run in a fixed order: missing challenge, expiry, attempt cap,
// then code comparison. Expired and exhausted challenges are removed before
// the request is rejected; a plain mismatch only increments the attempt
// counter, leaving the challenge in place. A code is verifiable strictly
// before its lifetime elapses, not at the boundary.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	s.mu.Lock()
	err := s.verifyChallenge(ctx, in, s.codeTTL(), s.attemptLimit())
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(in.Email, jwt.RoleAdmin)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate admin session token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Token: token}, nil
}

func (s *Usecase) verifyChallenge(ctx context.Context, in VerifyOTPInput, ttl time.Duration, maxAttempts int) error {
	ch, err := s.store.Get(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no pending otp challenge")
		return goerror.NewBusiness("No OTP found", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load otp challenge", "error", err)
		return goerror.NewServer(err)
	}

	if s.clock.Now().Sub(ch.IssuedAt) >= ttl {
		if err := s.store.Delete(ctx, in.Email); err != nil {
			slog.ErrorContext(ctx, "failed to delete expired otp challenge", "error", err)
			return goerror.NewServer(err)
		}
		slog.WarnContext(ctx, "otp challenge expired")
		return goerror.NewBusiness("OTP expired", goerror.CodeUnauthorized)
	}

	if ch.Attempts >= maxAttempts {
		if err := s.store.Delete(ctx, in.Email); err != nil {
			slog.ErrorContext(ctx, "failed to delete exhausted otp challenge", "error", err)
			return goerror.NewServer(err)
		}
		slog.WarnContext(ctx, "otp challenge attempt limit reached")
		return goerror.NewBusiness("Too many attempts", goerror.CodeUnauthorized)
	}

	if subtle.ConstantTimeCompare([]byte(in.OTP), []byte(ch.Code)) != 1 {
		if err := s.store.AddAttempt(ctx, in.Email); err != nil {
			slog.ErrorContext(ctx, "failed to count otp attempt", "error", err)
			return goerror.NewServer(err)
		}
		slog.WarnContext(ctx, "otp code mismatch", "attempts", ch.Attempts+1)
		return goerror.NewBusiness("Invalid OTP", goerror.CodeUnauthorized)
	}

	if err := s.store.Delete(ctx, in.Email); err != nil {
		slog.ErrorContext(ctx, "failed to delete verified otp challenge", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
