package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	documentDomain "github.com/allisson/docseal/internal/document/domain"
	"github.com/allisson/docseal/internal/metrics"
)

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Store records metrics for document store operations.
func (d *documentUseCaseWithMetrics) Store(
	ctx context.Context,
	input *documentDomain.StoreInput,
) (*documentDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Store(ctx, input)
	metrics.Record(ctx, d.metrics, "documents", "document_store", start, err)
	return document, err
}

// Open records metrics for document open operations.
func (d *documentUseCaseWithMetrics) Open(
	ctx context.Context,
	id uuid.UUID,
) (*documentDomain.OpenedDocument, error) {
	start := time.Now()
	opened, err := d.next.Open(ctx, id)
	metrics.Record(ctx, d.metrics, "documents", "document_open", start, err)
	return opened, err
}

// List records metrics for document list operations.
func (d *documentUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID string,
) ([]*documentDomain.Document, error) {
	start := time.Now()
	documents, err := d.next.List(ctx, ownerID)
	metrics.Record(ctx, d.metrics, "documents", "document_list", start, err)
	return documents, err
}

// Delete records metrics for document delete operations.
func (d *documentUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	metrics.Record(ctx, d.metrics, "documents", "document_delete", start, err)
	return err
}
