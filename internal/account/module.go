// Package account implements supporter accounts: signup, login, and the
// authenticated profile endpoint.
package account

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy/greenlegacy/internal/account/inbound"
	"github.com/greenlegacy/greenlegacy/internal/account/outbound/db"
	"github.com/greenlegacy/greenlegacy/internal/account/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/hash"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
	"github.com/greenlegacy/greenlegacy/internal/pkg/uid"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		Validator:  dep.Validator,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
