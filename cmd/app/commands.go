package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/serials/internal/app"
	"github.com/allisson/serials/internal/config"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getSerialCommands()...)
	return cmds
}

// withContainer loads and validates the configuration, then runs fn with a
// container that is shut down afterwards.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(container)
}

// withGroupUseCase is withContainer for commands that work on stored groups.
func withGroupUseCase(
	ctx context.Context,
	fn func(*app.Container, serialsUseCase.SerialGroupUseCase) error,
) error {
	return withContainer(ctx, func(container *app.Container) error {
		useCase, err := container.SerialGroupUseCase()
		if err != nil {
			return err
		}
		return fn(container, useCase)
	})
}
