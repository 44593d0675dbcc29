package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/config"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goroutine"
	"github.com/greenlegacy/greenlegacy/internal/pkg/idempotency"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
	"github.com/greenlegacy/greenlegacy/internal/pkg/uid"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

type repoDB interface {
	CreateDonation(ctx context.Context, in entity.Donation) error
	CreateContact(ctx context.Context, in entity.Contact) error
	CreateVolunteer(ctx context.Context, in entity.Volunteer) error
	CreateCSRInquiry(ctx context.Context, in entity.CSRInquiry) error
	CreateTree(ctx context.Context, in entity.Tree) error

	GetTreeByTag(ctx context.Context, tag string) (*entity.Tree, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
	GetRecentDonations(ctx context.Context, limit int32) ([]entity.Donation, error)
}

// Usecase implements the public program forms (donations, contact,
// volunteering, CSR), the tree lookup, and the admin dashboard operations.
type Usecase struct {
	repoDB    repoDB
	idemp     idempotency.Idempotency
	validator validator.Validator
	cfg       config.Config
	mailer    mail.Mail
	goroutine *goroutine.Manager
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	Mailer      mail.Mail
	Goroutine   *goroutine.Manager
	UID         uid.NumberID
	Clock       clock.Clocker
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		cfg:       dep.Config,
		mailer:    dep.Mailer,
		goroutine: dep.Goroutine,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("program.usecase").Start(ctx, name)
}
