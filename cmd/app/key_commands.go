package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/docseal/cmd/app/commands"
	"github.com/allisson/docseal/internal/app"
	"github.com/allisson/docseal/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate a new master key for the local encryption provider",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateKey(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "encrypt-text",
			Usage: "Encrypt text with the configured provider and print the envelope",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "text",
					Aliases: []string{"t"},
					Usage:   "Text to encrypt (omit to read from stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				service, err := container.EncryptionService(ctx)
				if err != nil {
					return err
				}

				return commands.RunEncryptText(
					ctx,
					service,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("text"),
				)
			},
		},
		{
			Name:  "decrypt-text",
			Usage: "Decrypt an envelope produced by encrypt-text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "payload",
					Aliases: []string{"p"},
					Usage:   "JSON envelope to decrypt (omit to read from stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				service, err := container.EncryptionService(ctx)
				if err != nil {
					return err
				}

				return commands.RunDecryptText(
					ctx,
					service,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("payload"),
				)
			},
		},
	}
}
