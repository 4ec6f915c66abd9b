package app

import (
	"log/slog"
	"os"

	"github.com/inkpress/inkpress/internal/blog"
	"github.com/inkpress/inkpress/internal/digest"
	"github.com/inkpress/inkpress/internal/identity"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Challenges: a.challenges,
			Mail:       a.mail,
			Goroutine:  a.goroutine,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			OID:        a.oid,
			HMAC:       a.hmac,
			Bcrypt:     a.bcrypt,
			Clock:      a.clock,
			Totp:       a.totp,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.blog.enabled") {
		if err := blog.New(blog.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module blog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.digest.enabled") {
		if err := digest.New(digest.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module digest", "error", err)
			os.Exit(1)
		}
	}
}
