// Package adminauth implements the two-step admin login: a credential check
// that emails a short-lived one-time code, and a verification step that
// exchanges the code for an admin session token.
package adminauth

import (
	"github.com/redis/go-redis/v9"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/inbound"
	"github.com/greenlegacy/greenlegacy/internal/adminauth/outbound/store"
	"github.com/greenlegacy/greenlegacy/internal/adminauth/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/config"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	ucDep := usecase.Dependency{
		Mailer:     dep.Mailer,
		Config:     dep.Config,
		Validator:  dep.Validator,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	}

	switch dep.Config.GetString("modules.adminauth.store") {
	case "redis":
		// Keys outlive the code so the verification flow can report expiry
		// instead of a missing challenge.
		ttl := dep.Config.GetMinute("modules.adminauth.otp_ttl_minutes")
		if ttl <= 0 {
			ttl = usecase.DefaultCodeTTL
		}
		ucDep.Store = store.NewRedis(dep.CacheConn, 2*ttl, dep.Instrument)
	default:
		ucDep.Store = store.NewMemory(dep.Instrument)
	}

	inbound.RegisterHTTPEndpoint(dep.Router, usecase.New(ucDep))

	return nil
}
