package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	documentDomain "github.com/allisson/docseal/internal/document/domain"
	documentUseCase "github.com/allisson/docseal/internal/document/usecase"
	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// documentView is the JSON representation of a stored document. Content is only
// set by get-document when the plaintext is not written to a file.
type documentView struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Kind        string `json:"kind"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Provider    string `json:"provider"`
	KeyID       string `json:"key_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	Content     string `json:"content,omitempty"`
}

func newDocumentView(document *documentDomain.Document) documentView {
	return documentView{
		ID:          document.ID.String(),
		OwnerID:     document.OwnerID,
		Kind:        document.Kind.String(),
		FileName:    document.FileName,
		ContentType: document.ContentType,
		Size:        document.Size,
		Provider:    document.Metadata.Provider.String(),
		KeyID:       document.Metadata.KeyID,
		CreatedAt:   document.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RunStoreDocument reads the file at path, encrypts it and stores it for owner.
// When contentType is empty it is detected from the file content.
//
// Requirements: Database must be migrated and the encryption provider configured.
func RunStoreDocument(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	ownerID, kind, path, contentType, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}
	defer encryptionDomain.Zero(content)

	if contentType == "" && len(content) > 0 {
		contentType = mimetype.Detect(content).String()
	}

	document, err := useCase.Store(ctx, &documentDomain.StoreInput{
		OwnerID:     ownerID,
		Kind:        documentDomain.Kind(kind),
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	logger.Info("document stored",
		slog.String("document_id", document.ID.String()),
		slog.String("kind", document.Kind.String()),
	)

	if format == FormatJSON {
		return writeJSON(writer, newDocumentView(document))
	}

	_, err = fmt.Fprintf(writer, "Document stored successfully\nID: %s\nProvider: %s\n",
		document.ID, document.Metadata.Provider)
	return err
}

// RunGetDocument decrypts a document. The plaintext goes to outPath when set,
// otherwise to writer (raw in text format, base64 inside the JSON document).
func RunGetDocument(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id, outPath, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	documentID, err := parseDocumentID(id)
	if err != nil {
		return err
	}

	opened, err := useCase.Open(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer encryptionDomain.Zero(opened.Content)

	logger.Info("document opened", slog.String("document_id", documentID.String()))

	view := newDocumentView(opened.Document)

	if outPath != "" {
		if err := os.WriteFile(outPath, opened.Content, 0o600); err != nil {
			return fmt.Errorf("failed to write document file: %w", err)
		}
		if format == FormatJSON {
			return writeJSON(writer, view)
		}
		_, err = fmt.Fprintf(writer, "Document %s written to %s\n", documentID, outPath)
		return err
	}

	if format == FormatJSON {
		view.Content = base64.StdEncoding.EncodeToString(opened.Content)
		return writeJSON(writer, view)
	}

	_, err = writer.Write(opened.Content)
	return err
}

// RunListDocuments lists the documents of owner without decrypting them.
func RunListDocuments(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	writer io.Writer,
	ownerID, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	documents, err := useCase.List(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if format == FormatJSON {
		views := make([]documentView, 0, len(documents))
		for _, document := range documents {
			views = append(views, newDocumentView(document))
		}
		return writeJSON(writer, views)
	}

	if len(documents) == 0 {
		_, err = fmt.Fprintf(writer, "No documents found for owner %s\n", ownerID)
		return err
	}

	for _, document := range documents {
		_, err = fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			document.ID,
			document.Kind,
			document.FileName,
			document.Size,
			document.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RunDeleteDocument permanently deletes a document.
func RunDeleteDocument(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	documentID, err := parseDocumentID(id)
	if err != nil {
		return err
	}

	if err := useCase.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	logger.Info("document deleted", slog.String("document_id", documentID.String()))

	if format == FormatJSON {
		return writeJSON(writer, map[string]interface{}{
			"id":      documentID.String(),
			"deleted": true,
		})
	}

	_, err = fmt.Fprintf(writer, "Document %s deleted\n", documentID)
	return err
}

// parseDocumentID parses a document id given on the command line.
func parseDocumentID(id string) (uuid.UUID, error) {
	documentID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid document id: %s", id)
	}
	return documentID, nil
}
