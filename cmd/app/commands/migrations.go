package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations executes database migrations based on the configured driver.
// Migrations are read from migrations/<postgresql|mysql|sqlite3> relative to the
// working directory. Returns nil if there is nothing to apply.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations",
		slog.String("driver", dbDriver),
	)

	migrationsPath, databaseURL := migrationSource(dbDriver, dbConnectionString)

	m, err := migrate.New(migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationSource maps a database/sql driver and DSN to the migration directory and the
// URL golang-migrate expects. The mysql and sqlite3 drivers take bare DSNs, so their
// scheme is prepended when missing.
func migrationSource(dbDriver, dbConnectionString string) (string, string) {
	switch dbDriver {
	case "mysql":
		return "file://migrations/mysql", withScheme("mysql://", dbConnectionString)
	case "sqlite3":
		return "file://migrations/sqlite3", withScheme("sqlite3://", dbConnectionString)
	default:
		return "file://migrations/postgresql", dbConnectionString
	}
}

func withScheme(scheme, dsn string) string {
	if strings.HasPrefix(dsn, scheme) {
		return dsn
	}
	return scheme + dsn
}
