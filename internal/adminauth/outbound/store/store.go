// Package store provides challenge storage backends for the admin one-time
// passcode flow. The in-memory backend suits a single instance; the Redis
// backend is for deployments running more than one replica.
package store

import (
	"context"
	"errors"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
)

// Store keeps at most one pending challenge per email.
type Store interface {
	// Get returns the pending challenge for the email, or goerror.ErrNotFound.
	Get(ctx context.Context, email string) (*entity.Challenge, error)
	// Put stores the challenge, replacing any pending one for the same email.
	Put(ctx context.Context, ch entity.Challenge) error
	// Delete removes the pending challenge for the email, if any.
	Delete(ctx context.Context, email string) error
	// AddAttempt increments the failed attempt counter of the pending challenge.
	AddAttempt(ctx context.Context, email string) error
}

func startSpan(ctx context.Context, ins instrument.Instrumentation, name string) (context.Context, trace.Span) {
	return ins.Tracer("adminauth.outbound.store").Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
