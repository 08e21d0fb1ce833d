package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/docseal/internal/document/domain"
	documentMocks "github.com/allisson/docseal/internal/document/usecase/mocks"
	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

func newTestDocument() *documentDomain.Document {
	return &documentDomain.Document{
		ID:          uuid.Must(uuid.NewV7()),
		OwnerID:     "user-42",
		Kind:        documentDomain.KindCertificate,
		FileName:    "certificate.txt",
		ContentType: "text/plain; charset=utf-8",
		Size:        11,
		Metadata: encryptionDomain.Metadata{
			Provider:    encryptionDomain.ProviderKMS,
			KeyID:       "alias/documents",
			WrappedKey:  "d3JhcHBlZA==",
			EncryptedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
		},
		CreatedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunStoreDocument(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output-detects-content-type", func(t *testing.T) {
		path := writeTempFile(t, "certificate.txt", "Hello World")
		document := newTestDocument()

		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Store", ctx, mock.MatchedBy(func(input *documentDomain.StoreInput) bool {
			return input.OwnerID == "user-42" &&
				input.Kind == documentDomain.KindCertificate &&
				input.FileName == "certificate.txt" &&
				strings.HasPrefix(input.ContentType, "text/plain") &&
				string(input.Content) == "Hello World"
		})).Return(document, nil)

		var out bytes.Buffer
		err := RunStoreDocument(ctx, mockUseCase, logger, &out, "user-42", "certificate", path, "", "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "Document stored successfully")
		require.Contains(t, out.String(), document.ID.String())
		require.Contains(t, out.String(), "Provider: kms")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output-keeps-explicit-content-type", func(t *testing.T) {
		path := writeTempFile(t, "letter.pdf", "%PDF-1.4 reference")
		document := newTestDocument()

		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Store", ctx, mock.MatchedBy(func(input *documentDomain.StoreInput) bool {
			return input.ContentType == "application/x-custom"
		})).Return(document, nil)

		var out bytes.Buffer
		err := RunStoreDocument(
			ctx, mockUseCase, logger, &out,
			"user-42", "reference_letter", path, "application/x-custom", "json",
		)
		require.NoError(t, err)

		var view documentView
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		require.Equal(t, document.ID.String(), view.ID)
		require.Equal(t, "kms", view.Provider)
		require.Equal(t, "alias/documents", view.KeyID)
		require.Empty(t, view.Content)
		require.NotContains(t, out.String(), "wrapped")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("missing-file", func(t *testing.T) {
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		err := RunStoreDocument(
			ctx, mockUseCase, logger, &bytes.Buffer{},
			"user-42", "certificate", filepath.Join(t.TempDir(), "missing.txt"), "", "text",
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read document file")
		mockUseCase.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("use-case-error", func(t *testing.T) {
		path := writeTempFile(t, "id.txt", "AB123456")

		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Store", ctx, mock.Anything).Return(nil, documentDomain.ErrDocumentTooLarge)

		err := RunStoreDocument(ctx, mockUseCase, logger, &bytes.Buffer{}, "user-42", "identity_number", path, "", "text")
		require.ErrorIs(t, err, documentDomain.ErrDocumentTooLarge)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunStoreDocument(ctx, nil, logger, &bytes.Buffer{}, "user-42", "certificate", "x", "", "xml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}

func TestRunGetDocument(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output-to-writer", func(t *testing.T) {
		document := newTestDocument()
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Open", ctx, document.ID).Return(&documentDomain.OpenedDocument{
			Document: document,
			Content:  []byte("Hello World"),
		}, nil)

		var out bytes.Buffer
		err := RunGetDocument(ctx, mockUseCase, logger, &out, document.ID.String(), "", "text")
		require.NoError(t, err)
		require.Equal(t, "Hello World", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output-with-content", func(t *testing.T) {
		document := newTestDocument()
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Open", ctx, document.ID).Return(&documentDomain.OpenedDocument{
			Document: document,
			Content:  []byte("Hello World"),
		}, nil)

		var out bytes.Buffer
		err := RunGetDocument(ctx, mockUseCase, logger, &out, document.ID.String(), "", "json")
		require.NoError(t, err)

		var view documentView
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		require.Equal(t, "SGVsbG8gV29ybGQ=", view.Content)
		require.Equal(t, "certificate", view.Kind)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("write-to-file", func(t *testing.T) {
		document := newTestDocument()
		outPath := filepath.Join(t.TempDir(), "out.txt")
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Open", ctx, document.ID).Return(&documentDomain.OpenedDocument{
			Document: document,
			Content:  []byte("Hello World"),
		}, nil)

		var out bytes.Buffer
		err := RunGetDocument(ctx, mockUseCase, logger, &out, document.ID.String(), outPath, "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "written to "+outPath)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		require.Equal(t, "Hello World", string(data))
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-id", func(t *testing.T) {
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		err := RunGetDocument(ctx, mockUseCase, logger, &bytes.Buffer{}, "not-a-uuid", "", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid document id")
	})

	t.Run("not-found", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Open", ctx, id).Return(nil, documentDomain.ErrDocumentNotFound)

		err := RunGetDocument(ctx, mockUseCase, logger, &bytes.Buffer{}, id.String(), "", "text")
		require.ErrorIs(t, err, documentDomain.ErrDocumentNotFound)
		mockUseCase.AssertExpectations(t)
	})
}

func TestRunListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		first := newTestDocument()
		second := newTestDocument()
		second.Kind = documentDomain.KindIdentityNumber
		second.FileName = "id.txt"

		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("List", ctx, "user-42").Return([]*documentDomain.Document{first, second}, nil)

		var out bytes.Buffer
		err := RunListDocuments(ctx, mockUseCase, &out, "user-42", "text")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		require.True(t, strings.HasPrefix(lines[0], first.ID.String()))
		require.Contains(t, lines[1], "identity_number\tid.txt")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("text-output-empty", func(t *testing.T) {
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("List", ctx, "user-7").Return([]*documentDomain.Document{}, nil)

		var out bytes.Buffer
		err := RunListDocuments(ctx, mockUseCase, &out, "user-7", "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "No documents found for owner user-7")
	})

	t.Run("json-output", func(t *testing.T) {
		document := newTestDocument()
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("List", ctx, "user-42").Return([]*documentDomain.Document{document}, nil)

		var out bytes.Buffer
		err := RunListDocuments(ctx, mockUseCase, &out, "user-42", "json")
		require.NoError(t, err)

		var views []documentView
		require.NoError(t, json.Unmarshal(out.Bytes(), &views))
		require.Len(t, views, 1)
		require.Equal(t, document.ID.String(), views[0].ID)
		require.Equal(t, "2025-03-14T15:09:26Z", views[0].CreatedAt)
	})

	t.Run("invalid-owner", func(t *testing.T) {
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("List", ctx, "").Return(nil, documentDomain.ErrInvalidDocument)

		err := RunListDocuments(ctx, mockUseCase, &bytes.Buffer{}, "", "text")
		require.ErrorIs(t, err, documentDomain.ErrInvalidDocument)
	})
}

func TestRunDeleteDocument(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Delete", ctx, id).Return(nil)

		var out bytes.Buffer
		err := RunDeleteDocument(ctx, mockUseCase, logger, &out, id.String(), "text")
		require.NoError(t, err)
		require.Equal(t, "Document "+id.String()+" deleted\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Delete", ctx, id).Return(nil)

		var out bytes.Buffer
		err := RunDeleteDocument(ctx, mockUseCase, logger, &out, id.String(), "json")
		require.NoError(t, err)
		require.Contains(t, out.String(), `"deleted": true`)
	})

	t.Run("not-found", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		mockUseCase := &documentMocks.MockDocumentUseCase{}
		mockUseCase.On("Delete", ctx, id).Return(documentDomain.ErrDocumentNotFound)

		err := RunDeleteDocument(ctx, mockUseCase, logger, &bytes.Buffer{}, id.String(), "text")
		require.ErrorIs(t, err, documentDomain.ErrDocumentNotFound)
	})
}
