package app

import (
	"context"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/tgauth/internal/pkg/clock"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/tgauth/internal/pkg/hash"
	"github.com/shandysiswandi/tgauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
	"github.com/shandysiswandi/tgauth/internal/pkg/messaging"
	"github.com/shandysiswandi/tgauth/internal/pkg/router"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hasher
	uuid      uid.StringID
	jwt       jwt.Issuer

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	store     ephemeral.Store
	idemp     idempotency.Idempotency
	messaging messaging.Messaging
	bot       *tgbotapi.BotAPI

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initStore()
	app.initMessaging()
	app.initTelegram()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
