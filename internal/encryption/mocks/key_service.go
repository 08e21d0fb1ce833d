// Package mocks provides mock implementations for testing encryption consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// MockKeyService is a mock implementation of KeyService for testing.
type MockKeyService struct {
	mock.Mock
}

var _ encryptionDomain.KeyService = (*MockKeyService)(nil)

// GenerateDataKey mocks the GenerateDataKey method of KeyService.
func (m *MockKeyService) GenerateDataKey(ctx context.Context, keyID string) ([]byte, []byte, error) {
	args := m.Called(ctx, keyID)
	var plaintext, wrapped []byte
	if v := args.Get(0); v != nil {
		plaintext = v.([]byte)
	}
	if v := args.Get(1); v != nil {
		wrapped = v.([]byte)
	}
	return plaintext, wrapped, args.Error(2)
}

// Decrypt mocks the Decrypt method of KeyService.
func (m *MockKeyService) Decrypt(ctx context.Context, keyID string, wrapped []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, wrapped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Close mocks the Close method of KeyService.
func (m *MockKeyService) Close() error {
	args := m.Called()
	return args.Error(0)
}
