package domain

import (
	"github.com/allisson/docseal/internal/errors"
)

// Document-specific error definitions.
var (
	// ErrDocumentNotFound indicates no document exists with the requested id.
	ErrDocumentNotFound = errors.Wrap(errors.ErrNotFound, "document not found")

	// ErrInvalidDocument indicates the document input failed validation.
	ErrInvalidDocument = errors.Wrap(errors.ErrInvalidInput, "invalid document")

	// ErrDocumentTooLarge indicates the document content exceeds the configured limit.
	ErrDocumentTooLarge = errors.Wrap(errors.ErrInvalidInput, "document too large")
)
