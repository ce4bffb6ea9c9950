package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/serials/cmd/app/commands"
	"github.com/allisson/serials/internal/app"
	"github.com/allisson/serials/internal/httputil"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func nameFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Required: true,
		Usage:    usage,
	}
}

func countFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:     "count",
		Aliases:  []string{"c"},
		Required: true,
		Usage:    "Number of serials to generate (0 to 4294967295)",
	}
}

func getSerialCommands() []*cli.Command {
	out := os.Stdout

	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate random 10-character alphanumeric serials without storing them",
			Flags: []cli.Flag{countFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.SerialUseCase()
					if err != nil {
						return err
					}
					return commands.RunGenerateSerials(
						ctx, useCase, container.Logger(), out,
						cmd.Int64("count"), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "create-group",
			Usage: "Generate serials and store them as a named serial group",
			Flags: []cli.Flag{nameFlag("Serial group name ([A-Za-z0-9._-], max 255)"), countFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(c *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunCreateSerialGroup(
						ctx, uc, c.Logger(), out,
						cmd.String("name"), cmd.Int64("count"), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "list-groups",
			Usage: "List stored serial groups ordered by name",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "offset", Value: 0, Usage: "Number of groups to skip"},
				&cli.IntFlag{
					Name:  "limit",
					Value: httputil.DefaultLimit,
					Usage: "Maximum number of groups to list (1 to 100)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(_ *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunListSerialGroups(
						ctx, uc, out,
						int(cmd.Int("offset")), int(cmd.Int("limit")), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "get-group",
			Usage: "Show a stored serial group and its serials",
			Flags: []cli.Flag{nameFlag("Serial group name"), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(_ *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunGetSerialGroup(ctx, uc, out, cmd.String("name"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "delete-group",
			Usage: "Permanently delete a stored serial group",
			Flags: []cli.Flag{nameFlag("Serial group name")},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(c *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunDeleteSerialGroup(ctx, uc, c.Logger(), out, cmd.String("name"))
				})
			},
		},
		{
			Name:  "export-group",
			Usage: "Write a serial group to the export bucket as data/<name>.json",
			Flags: []cli.Flag{nameFlag("Serial group name"), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(_ *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunExportSerialGroup(ctx, uc, out, cmd.String("name"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "export-groups",
			Usage: "Write every stored serial group to the export bucket",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGroupUseCase(ctx, func(c *app.Container, uc serialsUseCase.SerialGroupUseCase) error {
					return commands.RunExportSerialGroups(ctx, uc, c.Logger(), out, cmd.String("format"))
				})
			},
		},
	}
}
