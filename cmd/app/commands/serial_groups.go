package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/allisson/serials/internal/serials/domain"
	"github.com/allisson/serials/internal/serials/http/dto"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

// RunCreateSerialGroup generates count serials and stores them under name.
//
// Requirements: Database must be migrated and accessible.
func RunCreateSerialGroup(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
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

	logger.Info("creating serial group", slog.String("name", name), slog.Uint64("count", uint64(n)))

	group, err := groupUseCase.Create(ctx, name, n)
	if err != nil {
		return fmt.Errorf("failed to create serial group: %w", err)
	}

	logger.Info("serial group created",
		slog.String("id", group.ID.String()),
		slog.String("name", group.Name),
	)

	if format == "json" {
		return outputJSON(writer, dto.MapSerialGroupToResponse(group))
	}
	outputGroupText(writer, group)
	return nil
}

// RunGetSerialGroup prints a stored serial group with all of its serials.
func RunGetSerialGroup(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	writer io.Writer,
	name string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	group, err := groupUseCase.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get serial group: %w", err)
	}

	if format == "json" {
		return outputJSON(writer, dto.MapSerialGroupToResponse(group))
	}
	outputGroupText(writer, group)
	return nil
}

// RunListSerialGroups prints one page of serial groups ordered by name.
func RunListSerialGroups(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	writer io.Writer,
	offset, limit int,
	format string,
) error {
	if offset < 0 {
		return fmt.Errorf("offset must be a non-negative number, got: %d", offset)
	}
	if limit < 1 || limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got: %d", limit)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	groups, err := groupUseCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list serial groups: %w", err)
	}

	if format == "json" {
		return outputJSON(writer, dto.MapSerialGroupsToListResponse(groups))
	}

	if len(groups) == 0 {
		_, _ = fmt.Fprintln(writer, "No serial groups found")
		return nil
	}
	for _, group := range groups {
		_, _ = fmt.Fprintf(writer, "%s\t%d serial(s)\t%s\n",
			group.Name,
			len(group.Serials),
			group.CreatedAt.Format(time.RFC3339),
		)
	}
	return nil
}

// RunDeleteSerialGroup permanently removes a serial group.
func RunDeleteSerialGroup(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
) error {
	if err := groupUseCase.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete serial group: %w", err)
	}

	logger.Info("serial group deleted", slog.String("name", name))
	_, _ = fmt.Fprintf(writer, "Serial group %q deleted\n", name)
	return nil
}

// RunExportSerialGroup writes one serial group to the export bucket.
func RunExportSerialGroup(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	writer io.Writer,
	name string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := groupUseCase.Export(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to export serial group: %w", err)
	}

	if format == "json" {
		return outputJSON(writer, dto.ExportSerialGroupResponse{Key: key})
	}
	_, _ = fmt.Fprintf(writer, "Exported %s\n", key)
	return nil
}

// RunExportSerialGroups writes every stored serial group to the export bucket.
func RunExportSerialGroups(
	ctx context.Context,
	groupUseCase serialsUseCase.SerialGroupUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	keys, err := groupUseCase.ExportAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export serial groups: %w", err)
	}

	logger.Info("serial groups exported", slog.Int("count", len(keys)))

	if format == "json" {
		return outputJSON(writer, dto.ExportSerialGroupsResponse{Keys: keys})
	}
	_, _ = fmt.Fprintf(writer, "Exported %d serial group(s)\n", len(keys))
	for _, key := range keys {
		_, _ = fmt.Fprintf(writer, "  - %s\n", key)
	}
	return nil
}

// outputGroupText prints the group header followed by one serial per line.
func outputGroupText(writer io.Writer, group *domain.SerialGroup) {
	_, _ = fmt.Fprintf(writer, "Name:       %s\n", group.Name)
	_, _ = fmt.Fprintf(writer, "ID:         %s\n", group.ID.String())
	_, _ = fmt.Fprintf(writer, "Created At: %s\n", group.CreatedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(writer, "Serials:    %d\n\n", len(group.Serials))
	for _, serial := range group.Serials {
		_, _ = fmt.Fprintln(writer, serial)
	}
}
