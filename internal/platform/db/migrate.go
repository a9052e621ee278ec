package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and filesystem in package state.
var migrateMu sync.Mutex

// Migrate applies the embedded schema migrations for driver.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migrate: DB is nil")
	}

	var dialect, dir string
	switch driver {
	case DriverPostgres:
		dialect, dir = "postgres", "migrations/postgres"
	case DriverSqlite, "":
		dialect, dir = "sqlite3", "migrations/sqlite"
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: set dialect %q: %w", dialect, err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migrate: apply %s migrations: %w", dialect, err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("migrate: read version: %w", err)
	}
	slog.Info("database migrations applied", "driver", driver, "version", version)

	return nil
}
