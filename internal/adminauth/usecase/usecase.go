package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/config"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

// Fallbacks applied when the configured limits are absent or non-positive,
// so a thin config can never zero out the code lifetime or the attempt cap.
const (
	DefaultCodeTTL     = 5 * time.Minute
	DefaultMaxAttempts = 3
)

type challengeStore interface {
	Get(ctx context.Context, email string) (*entity.Challenge, error)
	Put(ctx context.Context, ch entity.Challenge) error
	Delete(ctx context.Context, email string) error
	AddAttempt(ctx context.Context, email string) error
}

// Usecase implements the admin passwordless second factor: a credential
// check followed by an emailed one-time code exchanged for a session token.
//
// The mutex serializes every read-modify-write on the challenge store so
// attempt counting stays exact under concurrent verification requests.
type Usecase struct {
	mu sync.Mutex

	store     challengeStore
	mailer    mail.Mail
	cfg       config.Config
	validator validator.Validator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	Store      challengeStore
	Mailer     mail.Mail
	Config     config.Config
	Validator  validator.Validator
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store:     dep.Store,
		mailer:    dep.Mailer,
		cfg:       dep.Config,
		validator: dep.Validator,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("adminauth.usecase").Start(ctx, name)
}

func (s *Usecase) codeTTL() time.Duration {
	if ttl := s.cfg.GetMinute("modules.adminauth.otp_ttl_minutes"); ttl > 0 {
		return ttl
	}
	return DefaultCodeTTL
}

func (s *Usecase) attemptLimit() int {
	if n := s.cfg.GetInt("modules.adminauth.max_attempts"); n > 0 {
		return n
	}
	return DefaultMaxAttempts
}

// checkCredentials compares the submitted credentials against the configured
// admin account. Both fields are compared in constant time before the result
// is combined, so a mismatch reveals nothing about which field was wrong.
func (s *Usecase) checkCredentials(email, password string) bool {
	adminEmail := s.cfg.GetString("admin.email")
	adminPassword := s.cfg.GetString("admin.password")
	if adminEmail == "" || adminPassword == "" {
		return false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword))

	return emailOK&passwordOK == 1
}

// generateCode returns a uniformly random six digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
