package app

import (
	"log/slog"
	"os"

	"github.com/greenlegacy/greenlegacy/internal/account"
	"github.com/greenlegacy/greenlegacy/internal/adminauth"
	"github.com/greenlegacy/greenlegacy/internal/program"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.adminauth.enabled") {
		if err := adminauth.New(adminauth.Dependency{
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Mailer:     a.mail,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module adminauth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.account.enabled") {
		if err := account.New(account.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			Bcrypt:     a.bcrypt,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module account", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.program.enabled") {
		if err := program.New(program.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Goroutine:   a.goroutine,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			Mailer:      a.mail,
			UID:         a.uid,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module program", "error", err)
			os.Exit(1)
		}
	}
}
