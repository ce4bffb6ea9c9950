// Package commands implements the CLI subcommands. Each Run function writes its
// result to the given writer so it can be tested without a terminal.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/serials/internal/app"
)

// closeContainer shuts the container down, logging instead of returning the error.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
		logger.Error("failed to close migrate",
			slog.Any("source_error", srcErr),
			slog.Any("database_error", dbErr),
		)
	}
}

// validateFormat accepts the two output formats every command supports.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// parseCount narrows a command-line count to the uint32 range.
func parseCount(count int64) (uint32, error) {
	if count < 0 || count > math.MaxUint32 {
		return 0, fmt.Errorf("count must be between 0 and %d, got: %d", uint32(math.MaxUint32), count)
	}
	return uint32(count), nil
}

// outputJSON writes v as indented JSON followed by a newline.
func outputJSON(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
