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

// MySQLDocumentRepository implements Document persistence for MySQL databases.
// Ids are stored as BINARY(16).
type MySQLDocumentRepository struct {
	db *sql.DB
}

// Create inserts a new document into the MySQL database.
func (m *MySQLDocumentRepository) Create(ctx context.Context, document *documentDomain.Document) error {
	querier := database.GetTx(ctx, m.db)

	id, err := document.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	metadata, err := marshalMetadata(document.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO documents (id, owner_id, kind, file_name, content_type, size, ciphertext, metadata, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	query := `SELECT id, owner_id, kind, file_name, content_type, size, ciphertext, metadata, created_at
			  FROM documents
			  WHERE id = ?`

	var document documentDomain.Document
	var rawID []byte
	var kind, metadata string

	err = querier.QueryRowContext(ctx, query, binaryID).Scan(
		&rawID,
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

	if err := document.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal document id")
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
func (m *MySQLDocumentRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*documentDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, kind, file_name, content_type, size, metadata, created_at
			  FROM documents
			  WHERE owner_id = ?
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
		var rawID []byte
		var kind, metadata string

		if err := rows.Scan(
			&rawID,
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

		if err := document.ID.UnmarshalBinary(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal document id")
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
func (m *MySQLDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, binaryID)
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

// NewMySQLDocumentRepository creates a new MySQL Document repository instance.
func NewMySQLDocumentRepository(db *sql.DB) *MySQLDocumentRepository {
	return &MySQLDocumentRepository{db: db}
}
