package commands

import (
	"context"
	"fmt"
	"log/slog"

	encryptionService "github.com/allisson/docseal/internal/encryption/service"
)

// RunEncryptText encrypts text with the configured provider and prints the JSON
// text envelope. When text is empty the value is read from streams.Reader.
func RunEncryptText(
	ctx context.Context,
	service encryptionService.Service,
	logger *slog.Logger,
	streams IOTuple,
	text string,
) error {
	text, err := readValue(text, streams.Reader)
	if err != nil {
		return err
	}

	payload, err := service.EncryptText(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to encrypt text: %w", err)
	}

	if _, err := fmt.Fprintln(streams.Writer, payload); err != nil {
		return err
	}

	logger.Info("text encrypted", slog.String("provider", service.Provider().String()))
	return nil
}

// RunDecryptText decrypts a JSON text envelope and prints the recovered text.
// When payload is empty the envelope is read from streams.Reader.
func RunDecryptText(
	ctx context.Context,
	service encryptionService.Service,
	logger *slog.Logger,
	streams IOTuple,
	payload string,
) error {
	payload, err := readValue(payload, streams.Reader)
	if err != nil {
		return err
	}
	if payload == "" {
		return fmt.Errorf("payload is required (use --payload or stdin)")
	}

	text, err := service.DecryptText(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to decrypt text: %w", err)
	}

	if _, err := fmt.Fprintln(streams.Writer, text); err != nil {
		return err
	}

	logger.Info("text decrypted", slog.String("provider", service.Provider().String()))
	return nil
}
