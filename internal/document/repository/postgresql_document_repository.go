package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/docseal/internal/database"
	documentDomain "github.com/allisson/docseal/internal/document/domain"
	apperrors "github.com/allisson/docseal/internal/errors"
)

// PostgreSQLDocumentRepository implements Document persistence for PostgreSQL databases.
type PostgreSQLDocumentRepository struct {
	db *sql.DB
}

// Create inserts a new document into the PostgreSQL database.
func (p *PostgreSQLDocumentRepository) Create(ctx context.Context, document *documentDomain.Document) error {
	querier := database.GetTx(ctx, p.db)

	metadata, err := marshalMetadata(document.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO documents (id, owner_id, kind, file_name, content_type, size, ciphertext, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = querier.ExecContext(
		ctx,
		query,
		document.ID,
		document.OwnerID,
		string(document.Kind),
		document.FileName,
		document.ContentType,
		document.Size,
		document.Ciphertext,
		metadata,
		document.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create document")
	}
	return nil
}

// Get retrieves a document, ciphertext included, by its id.
func (p *PostgreSQLDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, kind, file_name, content_type, size, ciphertext, metadata, created_at
			  FROM documents
			  WHERE id = $1`

	var document documentDomain.Document
	var kind, metadata string

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&document.ID,
		&document.OwnerID,
		&kind,
		&document.FileName,
		&document.ContentType,
		&document.Size,
		&document.Ciphertext,
		&metadata,
		&document.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentDomain.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document")
	}

	document.Kind = documentDomain.Kind(kind)
	document.Metadata, err = unmarshalMetadata(metadata)
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// ListByOwner retrieves the documents of an owner ordered by creation time.
// Ciphertext is not loaded.
func (p *PostgreSQLDocumentRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*documentDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, kind, file_name, content_type, size, metadata, created_at
			  FROM documents
			  WHERE owner_id = $1
			  ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	documents := make([]*documentDomain.Document, 0)
	for rows.Next() {
		var document documentDomain.Document
		var kind, metadata string

		if err := rows.Scan(
			&document.ID,
			&document.OwnerID,
			&kind,
			&document.FileName,
			&document.ContentType,
			&document.Size,
			&metadata,
			&document.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan document")
		}

		document.Kind = documentDomain.Kind(kind)
		document.Metadata, err = unmarshalMetadata(metadata)
		if err != nil {
			return nil, err
		}
		documents = append(documents, &document)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate documents")
	}

	return documents, nil
}

// Delete permanently removes a document.
func (p *PostgreSQLDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete document")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return documentDomain.ErrDocumentNotFound
	}

	return nil
}

// NewPostgreSQLDocumentRepository creates a new PostgreSQL Document repository instance.
func NewPostgreSQLDocumentRepository(db *sql.DB) *PostgreSQLDocumentRepository {
	return &PostgreSQLDocumentRepository{db: db}
}
