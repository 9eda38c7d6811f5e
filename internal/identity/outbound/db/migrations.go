package db

import "embed"

// MigrationFS holds the accounts schema for cmd/migrate.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
