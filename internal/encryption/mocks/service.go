package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// MockService is a mock implementation of the encryption Service for testing.
type MockService struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of Service.
func (m *MockService) Encrypt(
	ctx context.Context,
	plaintext []byte,
) ([]byte, *encryptionDomain.Metadata, error) {
	args := m.Called(ctx, plaintext)
	var ciphertext []byte
	if v := args.Get(0); v != nil {
		ciphertext = v.([]byte)
	}
	var metadata *encryptionDomain.Metadata
	if v := args.Get(1); v != nil {
		metadata = v.(*encryptionDomain.Metadata)
	}
	return ciphertext, metadata, args.Error(2)
}

// Decrypt mocks the Decrypt method of Service.
func (m *MockService) Decrypt(
	ctx context.Context,
	ciphertext []byte,
	metadata *encryptionDomain.Metadata,
) ([]byte, error) {
	args := m.Called(ctx, ciphertext, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// EncryptText mocks the EncryptText method of Service.
func (m *MockService) EncryptText(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// DecryptText mocks the DecryptText method of Service.
func (m *MockService) DecryptText(ctx context.Context, payload string) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// Provider mocks the Provider method of Service.
func (m *MockService) Provider() encryptionDomain.Provider {
	args := m.Called()
	return args.Get(0).(encryptionDomain.Provider)
}
