// Package usecase implements storing and opening sensitive documents. Content is
// encrypted through the configured encryption provider before it reaches the
// repository, and only ciphertext plus metadata are persisted.
package usecase

import (
	"context"

	"github.com/google/uuid"

	documentDomain "github.com/allisson/docseal/internal/document/domain"
)

// DocumentRepository defines the interface for Document persistence operations.
type DocumentRepository interface {
	Create(ctx context.Context, document *documentDomain.Document) error
	Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*documentDomain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentUseCase defines the interface for document business logic.
type DocumentUseCase interface {
	Store(ctx context.Context, input *documentDomain.StoreInput) (*documentDomain.Document, error)
	// Open retrieves and decrypts a document.
	//
	// Security Note: the returned OpenedDocument holds plaintext in Content.
	// Callers MUST zero it after use by calling encryptionDomain.Zero(opened.Content).
	Open(ctx context.Context, id uuid.UUID) (*documentDomain.OpenedDocument, error)
	List(ctx context.Context, ownerID string) ([]*documentDomain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
