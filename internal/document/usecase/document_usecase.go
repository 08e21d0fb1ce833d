package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/docseal/internal/database"
	documentDomain "github.com/allisson/docseal/internal/document/domain"
	encryptionService "github.com/allisson/docseal/internal/encryption/service"
	apperrors "github.com/allisson/docseal/internal/errors"
)

// documentUseCase implements the DocumentUseCase interface.
type documentUseCase struct {
	txManager  database.TxManager
	repo       DocumentRepository
	encryption encryptionService.Service
	maxSize    int64
}

// Store validates, encrypts and persists a new document.
func (d *documentUseCase) Store(
	ctx context.Context,
	input *documentDomain.StoreInput,
) (*documentDomain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if d.maxSize > 0 && int64(len(input.Content)) > d.maxSize {
		return nil, fmt.Errorf(
			"%w: %d bytes exceeds the limit of %d bytes",
			documentDomain.ErrDocumentTooLarge,
			len(input.Content),
			d.maxSize,
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate document id")
	}

	// Encrypt before opening the transaction; kms providers make a network call.
	ciphertext, metadata, err := d.encryption.Encrypt(ctx, input.Content)
	if err != nil {
		return nil, err
	}

	document := &documentDomain.Document{
		ID:          id,
		OwnerID:     input.OwnerID,
		Kind:        input.Kind,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        int64(len(input.Content)),
		Ciphertext:  ciphertext,
		Metadata:    *metadata,
		CreatedAt:   time.Now().UTC(),
	}

	err = d.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return d.repo.Create(txCtx, document)
	})
	if err != nil {
		return nil, err
	}

	return document, nil
}

// Open loads a document and decrypts it with the provider named in its metadata.
func (d *documentUseCase) Open(ctx context.Context, id uuid.UUID) (*documentDomain.OpenedDocument, error) {
	document, err := d.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := d.encryption.Decrypt(ctx, document.Ciphertext, &document.Metadata)
	if err != nil {
		return nil, err
	}

	return &documentDomain.OpenedDocument{
		Document: document,
		Content:  content,
	}, nil
}

// List returns the documents of an owner without their ciphertext.
func (d *documentUseCase) List(ctx context.Context, ownerID string) ([]*documentDomain.Document, error) {
	if ownerID == "" {
		return nil, apperrors.Wrap(documentDomain.ErrInvalidDocument, "owner id is required")
	}
	return d.repo.ListByOwner(ctx, ownerID)
}

// Delete permanently removes a document.
func (d *documentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return d.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return d.repo.Delete(txCtx, id)
	})
}

// NewDocumentUseCase creates a new DocumentUseCase. A maxSize of zero disables the
// size limit.
func NewDocumentUseCase(
	txManager database.TxManager,
	repo DocumentRepository,
	encryption encryptionService.Service,
	maxSize int64,
) DocumentUseCase {
	return &documentUseCase{
		txManager:  txManager,
		repo:       repo,
		encryption: encryption,
		maxSize:    maxSize,
	}
}
