// Command migrate applies the embedded account schema migrations.
//
//	go run ./cmd/migrate -direction up
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/shandysiswandi/tgauth/internal/identity/outbound/db"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply; 0 means all")
	flag.Parse()

	instrument.SetupLogging(instrument.LogConfig{ServiceName: "tgauth-migrate"})

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path, config.WithEnvPrefix("TGAUTH"))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}
	defer cfg.Close()

	if err := run(cfg.GetString("database.url"), *direction, *steps); err != nil {
		slog.Error("failed to run migrations", "direction", *direction, "error", err)
		os.Exit(1)
	}
}

func run(dsn, direction string, steps int) error {
	if strings.TrimSpace(dsn) == "" {
		return errors.New("database.url is not set")
	}
	if direction != "up" && direction != "down" {
		return errors.New("direction must be up or down")
	}

	src, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	switch {
	case steps > 0 && direction == "down":
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no migration to apply", "direction", direction)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	slog.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)

	return nil
}
