package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"

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

const (
	storeDriverRedis  = "redis"
	storeDriverMemory = "memory"
)

var configDefaults = map[string]any{
	"app.tz":                               "UTC",
	"app.server.max_goroutine":             0,
	"app.server.http.address":              ":8080",
	"hash.bcrypt.cost":                     12,
	"jwt.issuer":                           "tgauth",
	"jwt.access_ttl_days":                  7,
	"jwt.refresh_ttl_days":                 30,
	"store.driver":                         storeDriverRedis,
	"store.timeout_ms":                     2000,
	"messaging.driver":                     messaging.DriverMemory,
	"modules.identity.otp.length":          6,
	"modules.identity.otp.ttl_seconds":     120,
	"modules.channel.poll.timeout_seconds": 10,
}

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path, config.WithDefaults(configDefaults), config.WithEnvPrefix("TGAUTH"))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: float64(a.config.GetInt("instrument.trace_sample_percent")) / 100,
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initJWT() {
	issuer, err := jwt.NewHMAC(jwt.Config{
		Algorithm:  a.config.GetString("jwt.algorithm"),
		Secret:     []byte(a.config.GetString("jwt.secret")),
		Issuer:     a.config.GetString("jwt.issuer"),
		Audiences:  a.config.GetArray("jwt.audiences"),
		AccessTTL:  a.config.GetDay("jwt.access_ttl_days"),
		RefreshTTL: a.config.GetDay("jwt.refresh_ttl_days"),
		Clock:      a.clock,
		UUID:       a.uuid,
	})
	if err != nil {
		slog.Error("failed to init jwt token", "error", err)
		os.Exit(1)
	}
	a.jwt = issuer
}

func (a *App) initDatabase() {
	config, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to parse DB connection string.", "error", err)
		os.Exit(1)
	}

	maxConns := a.config.GetInt("database.pool.max_conns")
	config.MaxConns = int32(lo.Ternary(maxConns > 0, maxConns, 10))
	config.MinConns = int32(a.config.GetInt("database.pool.min_conns"))
	config.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	config.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	config.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, config)
	if err != nil {
		slog.Error("failed to create DB connection pool", "error", err)
		os.Exit(1)
	}

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		slog.Error("failed to ping DB", "error", err)
		os.Exit(1)
	}

	a.dbConn = pool
}

// initStore selects the ephemeral store. The memory driver keeps pending
// codes in process and disables update deduplication, so it only suits a
// single instance.
func (a *App) initStore() {
	driver := strings.TrimSpace(a.config.GetString("store.driver"))

	switch driver {
	case storeDriverMemory:
		slog.Warn("ephemeral store runs in memory, pending codes are lost on restart")
		a.store = ephemeral.NewMemory(a.clock)
		return
	case storeDriverRedis:
	default:
		slog.Error("failed to init store, unknown driver", "driver", driver)
		os.Exit(1)
	}

	opt, err := redis.ParseURL(a.config.GetString("redis.url"))
	if err != nil {
		slog.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	a.cacheConn = rdb
	a.store = ephemeral.NewRedis(ephemeral.RedisConfig{
		Client:  rdb,
		Timeout: a.config.GetMillisecond("store.timeout_ms"),
	})
	a.idemp = idempotency.New(rdb, "idempotency:")
}

func (a *App) initMessaging() {
	driver := a.config.GetString("messaging.driver")
	client, err := messaging.NewFromDriver(driver, messaging.FactoryOptions{
		NATS: messaging.NATSConfig{
			URL: a.config.GetString("messaging.nats.url"),
			Options: []nats.Option{
				nats.Name(a.config.GetString("messaging.nats.name")),
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.ReconnectWait(a.config.GetSecond("messaging.nats.reconnect_wait_seconds")),
				nats.PingInterval(a.config.GetSecond("messaging.nats.ping_interval_seconds")),
				nats.MaxPingsOutstanding(a.config.GetInt("messaging.nats.max_pings_outstanding")),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		Kafka: messaging.KafkaConfig{
			Brokers: a.config.GetArray("messaging.kafka.brokers"),
			Dialer: &kafka.Dialer{
				ClientID:  a.config.GetString("messaging.kafka.client_id"),
				Timeout:   a.config.GetSecond("messaging.kafka.dial_timeout_seconds"),
				DualStack: true,
			},
		},
	})
	if err != nil {
		slog.Error("failed to init messaging", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.messaging = client
}

// initTelegram leaves the bot nil when no token is configured; the HTTP API
// still serves redemptions of codes minted by another instance.
func (a *App) initTelegram() {
	token := strings.TrimSpace(a.config.GetString("telegram.token"))
	if token == "" {
		return
	}

	endpoint := lo.CoalesceOrEmpty(a.config.GetString("telegram.api_endpoint"), tgbotapi.APIEndpoint)
	client := &http.Client{
		// long polling holds the request open for the poll timeout
		Timeout: a.config.GetSecond("modules.channel.poll.timeout_seconds") + 10*time.Second,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
			MaxIdleConnsPerHost: 4,
		},
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		slog.Error("failed to init telegram bot", "error", err)
		os.Exit(1)
	}
	bot.Debug = a.config.GetBool("telegram.debug")

	slog.Info("telegram bot authorized", "username", bot.Self.UserName)

	a.bot = bot
}

type healthResponse struct {
	Status string `json:"status"`
}

func (healthResponse) Message() string { return "service is healthy" }

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})

	a.router.GET("/healthz", func(*router.Request) (any, error) {
		return healthResponse{Status: "ok"}, nil
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: lo.Ternary(a.config.GetSecond("app.server.http.read_header_timeout_seconds") > 0, a.config.GetSecond("app.server.http.read_header_timeout_seconds"), 5*time.Second),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Messaging",
			fn: func(context.Context) error {
				return a.messaging.Close()
			},
		},
		{
			name: "Redis",
			fn: func(context.Context) error {
				if a.cacheConn == nil {
					return nil
				}
				return a.cacheConn.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				a.dbConn.Close()

				return nil
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
