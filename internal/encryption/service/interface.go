// Package service implements the encryption providers that protect sensitive
// documents at rest: a local provider holding one master key and a kms provider
// using per-operation data keys wrapped by a remote key service. A Factory builds
// and caches the provider selected by configuration.
package service

import (
	"context"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// Service is the capability shared by every encryption provider.
type Service interface {
	// Encrypt seals plaintext and returns the framed ciphertext with the metadata
	// required to decrypt it.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, *encryptionDomain.Metadata, error)

	// Decrypt opens a ciphertext produced by Encrypt. Metadata naming another
	// provider is rejected with ErrProviderMismatch.
	Decrypt(ctx context.Context, ciphertext []byte, metadata *encryptionDomain.Metadata) ([]byte, error)

	// EncryptText encrypts a UTF-8 string and returns the JSON text envelope.
	EncryptText(ctx context.Context, text string) (string, error)

	// DecryptText decrypts a JSON text envelope produced by EncryptText.
	DecryptText(ctx context.Context, payload string) (string, error)

	// Provider returns the provider identifier recorded in metadata.
	Provider() encryptionDomain.Provider
}
