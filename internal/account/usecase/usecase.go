package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/greenlegacy/greenlegacy/internal/account/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/hash"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/uid"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

type repoDB interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Usecase implements supporter signup, login, and profile lookup.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	bcrypt    hash.Hash
	uid       uid.NumberID
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Bcrypt     hash.Hash
	UID        uid.NumberID
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}
