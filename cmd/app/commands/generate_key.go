package commands

import (
	"fmt"
	"io"
	"log/slog"

	encryptionService "github.com/allisson/docseal/internal/encryption/service"
)

// RunGenerateKey generates a random 32-byte master key for the local provider and
// prints it as an ENCRYPTION_KEY assignment ready for an .env file.
//
// The key is printed once and never logged.
func RunGenerateKey(logger *slog.Logger, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := encryptionService.GenerateKey()
	if err != nil {
		return err
	}

	if format == FormatJSON {
		if err := writeJSON(writer, map[string]string{"encryption_key": key}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "# Local provider master key")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, `ENCRYPTION_PROVIDER="local"`)
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", key)
	}

	logger.Info("master key generated")
	return nil
}
