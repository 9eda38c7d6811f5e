package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/tgauth/internal/channel"
	"github.com/shandysiswandi/tgauth/internal/identity"
)

func (a *App) initModules() {
	identityUC, err := identity.New(identity.Dependency{
		DBConn:     a.dbConn,
		Store:      a.store,
		Router:     a.router,
		Messaging:  a.messaging,
		Config:     a.config,
		Instrument: a.ins,
		UUID:       a.uuid,
		Bcrypt:     a.bcrypt,
		Validator:  a.validator,
		JWT:        a.jwt,
	})
	if err != nil {
		slog.Error("failed to init module identity", "error", err)
		os.Exit(1)
	}

	if a.bot == nil {
		slog.Warn("module channel disabled, telegram bot is not configured")
		return
	}

	if err := channel.New(channel.Dependency{
		Ctx:         a.ctx,
		Bot:         a.bot,
		Identity:    identityUC,
		Store:       a.store,
		Messaging:   a.messaging,
		Config:      a.config,
		Instrument:  a.ins,
		UUID:        a.uuid,
		Goroutine:   a.goroutine,
		Validator:   a.validator,
		Idempotency: a.idemp,
	}); err != nil {
		slog.Error("failed to init module channel", "error", err)
		os.Exit(1)
	}
}
