package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	validation "github.com/jellydator/validation"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
	customValidation "github.com/allisson/docseal/internal/validation"
)

// LocalProvider encrypts with a single long-lived master key.
//
// The master key is set once at construction and never serialized or logged. The
// decoded key bytes are zeroed right after the cipher is built; the cipher keeps
// the expanded key schedule for the provider's lifetime.
type LocalProvider struct {
	cipher *AESGCMCipher
	now    func() time.Time
}

// NewLocalProvider creates a local provider from a 64-character hex master key.
// Upper and lower case hex digits are accepted.
//
// Returns ErrInvalidKeyFormat for any other input.
func NewLocalProvider(hexKey string) (*LocalProvider, error) {
	rule := customValidation.HexKey{Length: encryptionDomain.LocalKeyHexLength}
	if err := validation.Validate(hexKey, validation.Required, rule); err != nil {
		return nil, fmt.Errorf(
			"%w: master key must be %d hex characters",
			encryptionDomain.ErrInvalidKeyFormat,
			encryptionDomain.LocalKeyHexLength,
		)
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, encryptionDomain.ErrInvalidKeyFormat
	}
	defer encryptionDomain.Zero(key)

	c, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}

	return &LocalProvider{
		cipher: c,
		now:    time.Now,
	}, nil
}

// GenerateKey returns a fresh random master key as 64 hex characters.
func GenerateKey() (string, error) {
	key := make([]byte, encryptionDomain.KeySize)
	defer encryptionDomain.Zero(key)

	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate master key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Encrypt seals plaintext with the master key.
func (l *LocalProvider) Encrypt(
	ctx context.Context,
	plaintext []byte,
) ([]byte, *encryptionDomain.Metadata, error) {
	ciphertext, err := l.cipher.Seal(plaintext)
	if err != nil {
		return nil, nil, err
	}

	metadata := &encryptionDomain.Metadata{
		Provider:    encryptionDomain.ProviderLocal,
		Algorithm:   encryptionDomain.AlgorithmAES256GCM,
		EncryptedAt: l.now().UTC(),
	}
	return ciphertext, metadata, nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (l *LocalProvider) Decrypt(
	ctx context.Context,
	ciphertext []byte,
	metadata *encryptionDomain.Metadata,
) ([]byte, error) {
	if err := checkProvider(metadata, encryptionDomain.ProviderLocal); err != nil {
		return nil, err
	}
	return l.cipher.Open(ciphertext)
}

// EncryptText encrypts text and returns the JSON text envelope.
func (l *LocalProvider) EncryptText(ctx context.Context, text string) (string, error) {
	return encryptText(ctx, l, text)
}

// DecryptText decrypts a JSON text envelope.
func (l *LocalProvider) DecryptText(ctx context.Context, payload string) (string, error) {
	return decryptText(ctx, l, payload)
}

// Provider returns ProviderLocal.
func (l *LocalProvider) Provider() encryptionDomain.Provider {
	return encryptionDomain.ProviderLocal
}
