// Package mocks provides mock implementations for testing document consumers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	documentDomain "github.com/allisson/docseal/internal/document/domain"
)

// MockDocumentRepository is a mock implementation of DocumentRepository for testing.
type MockDocumentRepository struct {
	mock.Mock
}

// Create mocks the Create method of DocumentRepository.
func (m *MockDocumentRepository) Create(ctx context.Context, document *documentDomain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

// Get mocks the Get method of DocumentRepository.
func (m *MockDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Document), args.Error(1)
}

// ListByOwner mocks the ListByOwner method of DocumentRepository.
func (m *MockDocumentRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*documentDomain.Document, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Document), args.Error(1)
}

// Delete mocks the Delete method of DocumentRepository.
func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocumentUseCase is a mock implementation of DocumentUseCase for testing.
type MockDocumentUseCase struct {
	mock.Mock
}

// Store mocks the Store method of DocumentUseCase.
func (m *MockDocumentUseCase) Store(
	ctx context.Context,
	input *documentDomain.StoreInput,
) (*documentDomain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Document), args.Error(1)
}

// Open mocks the Open method of DocumentUseCase.
func (m *MockDocumentUseCase) Open(ctx context.Context, id uuid.UUID) (*documentDomain.OpenedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.OpenedDocument), args.Error(1)
}

// List mocks the List method of DocumentUseCase.
func (m *MockDocumentUseCase) List(ctx context.Context, ownerID string) ([]*documentDomain.Document, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Document), args.Error(1)
}

// Delete mocks the Delete method of DocumentUseCase.
func (m *MockDocumentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTxManager is a mock implementation of TxManager that runs fn directly.
type MockTxManager struct {
	mock.Mock
}

// WithTx records the call and runs fn unless an error is configured.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
