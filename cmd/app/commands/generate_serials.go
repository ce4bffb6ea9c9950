package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/serials/internal/serials/http/dto"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

// RunGenerateSerials prints count freshly generated serials, one per line in text
// format or as {"serials": [...], "count": N} in JSON format. Nothing is stored,
// so no database is required.
func RunGenerateSerials(
	ctx context.Context,
	serialUseCase serialsUseCase.SerialUseCase,
	logger *slog.Logger,
	writer io.Writer,
	count int64,
	format string,
) error {
	n, err := parseCount(count)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	serials := serialUseCase.GenerateSerials(ctx, n)
	logger.Debug("serials generated", slog.Int("count", len(serials)))

	if format == "json" {
		return outputJSON(writer, dto.MapSerialsToResponse(serials))
	}

	for _, serial := range serials {
		_, _ = fmt.Fprintln(writer, serial)
	}
	return nil
}
