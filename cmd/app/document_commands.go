package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/docseal/cmd/app/commands"
	"github.com/allisson/docseal/internal/app"
	"github.com/allisson/docseal/internal/config"
)

func getDocumentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "store-document",
			Usage: "Encrypt a file and store it as a document",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "owner",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Owner (user) id",
				},
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Document kind (identity_number, certificate or reference_letter)",
				},
				&cli.StringFlag{
					Name:     "file",
					Required: true,
					Usage:    "Path of the file to store",
				},
				&cli.StringFlag{
					Name:  "content-type",
					Usage: "Content type (detected from the content when omitted)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.DocumentUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunStoreDocument(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("owner"),
					cmd.String("kind"),
					cmd.String("file"),
					cmd.String("content-type"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "get-document",
			Usage: "Decrypt a stored document",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Document ID (UUID)",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "Write the content to this path instead of stdout",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.DocumentUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunGetDocument(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("out"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-documents",
			Usage: "List the documents of an owner",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "owner",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Owner (user) id",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.DocumentUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunListDocuments(
					ctx,
					useCase,
					commands.DefaultIO().Writer,
					cmd.String("owner"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-document",
			Usage: "Permanently delete a document",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Document ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.DocumentUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunDeleteDocument(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
	}
}
