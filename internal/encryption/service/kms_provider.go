package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// KMSProvider implements envelope encryption on top of a remote key service.
//
// Every Encrypt asks the key service for a fresh data key, seals the plaintext with
// it and stores only the wrapped form in metadata. Decrypt asks the key service to
// unwrap that key first. The master key never leaves the key service; plaintext data
// keys are call-local and zeroed before the call returns, on error paths too.
//
// The provider holds no lock: concurrent calls issue independent key service
// requests.
type KMSProvider struct {
	keyService encryptionDomain.KeyService
	keyID      string
	now        func() time.Time
}

// NewKMSProvider creates a kms provider using keyID as the remote master key.
// Returns ErrConfiguration if keyService is nil or keyID is empty.
func NewKMSProvider(keyService encryptionDomain.KeyService, keyID string) (*KMSProvider, error) {
	if keyService == nil {
		return nil, fmt.Errorf("%w: key service is required", encryptionDomain.ErrConfiguration)
	}
	if keyID == "" {
		return nil, fmt.Errorf("%w: kms key id is required", encryptionDomain.ErrConfiguration)
	}

	return &KMSProvider{
		keyService: keyService,
		keyID:      keyID,
		now:        time.Now,
	}, nil
}

// KeyID returns the identifier of the remote master key.
func (k *KMSProvider) KeyID() string {
	return k.keyID
}

// Encrypt seals plaintext with a freshly minted data key.
func (k *KMSProvider) Encrypt(
	ctx context.Context,
	plaintext []byte,
) ([]byte, *encryptionDomain.Metadata, error) {
	dek, wrapped, err := k.keyService.GenerateDataKey(ctx, k.keyID)
	defer encryptionDomain.Zero(dek)
	if err != nil {
		return nil, nil, keyServiceError("failed to generate data key", err)
	}
	if len(dek) != encryptionDomain.KeySize || len(wrapped) == 0 {
		return nil, nil, fmt.Errorf("%w: key service returned no usable key material", encryptionDomain.ErrKeyService)
	}

	ciphertext, err := Seal(dek, plaintext)
	if err != nil {
		return nil, nil, err
	}

	metadata := &encryptionDomain.Metadata{
		Provider:    encryptionDomain.ProviderKMS,
		KeyID:       k.keyID,
		WrappedKey:  base64.StdEncoding.EncodeToString(wrapped),
		EncryptedAt: k.now().UTC(),
	}
	return ciphertext, metadata, nil
}

// Decrypt unwraps the data key recorded in metadata and opens the ciphertext.
//
// The key id recorded in metadata takes precedence over the configured one so
// ciphertexts produced under a previous master key remain readable.
func (k *KMSProvider) Decrypt(
	ctx context.Context,
	ciphertext []byte,
	metadata *encryptionDomain.Metadata,
) ([]byte, error) {
	if err := checkProvider(metadata, encryptionDomain.ProviderKMS); err != nil {
		return nil, err
	}
	if metadata.WrappedKey == "" {
		return nil, encryptionDomain.ErrMissingWrappedKey
	}

	wrapped, err := base64.StdEncoding.DecodeString(metadata.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key is not valid base64", encryptionDomain.ErrMissingWrappedKey)
	}

	keyID := metadata.KeyID
	if keyID == "" {
		keyID = k.keyID
	}

	dek, err := k.keyService.Decrypt(ctx, keyID, wrapped)
	defer encryptionDomain.Zero(dek)
	if err != nil {
		return nil, keyServiceError("failed to unwrap data key", err)
	}
	if len(dek) != encryptionDomain.KeySize {
		return nil, fmt.Errorf("%w: key service returned no usable key material", encryptionDomain.ErrKeyService)
	}

	if len(ciphertext) < encryptionDomain.MinCiphertextSize {
		return nil, fmt.Errorf(
			"%w: ciphertext must be at least %d bytes, got %d",
			encryptionDomain.ErrMalformedInput,
			encryptionDomain.MinCiphertextSize,
			len(ciphertext),
		)
	}

	return Open(dek, ciphertext)
}

// EncryptText encrypts text and returns the JSON text envelope.
func (k *KMSProvider) EncryptText(ctx context.Context, text string) (string, error) {
	return encryptText(ctx, k, text)
}

// DecryptText decrypts a JSON text envelope.
func (k *KMSProvider) DecryptText(ctx context.Context, payload string) (string, error) {
	return decryptText(ctx, k, payload)
}

// Provider returns ProviderKMS.
func (k *KMSProvider) Provider() encryptionDomain.Provider {
	return encryptionDomain.ProviderKMS
}

// Close releases the key service client.
func (k *KMSProvider) Close() error {
	return k.keyService.Close()
}

// keyServiceError classifies a key service failure as ErrKeyService without
// repeating the classification when the key service already did it.
func keyServiceError(message string, err error) error {
	if errors.Is(err, encryptionDomain.ErrKeyService) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return fmt.Errorf("%w: %s: %v", encryptionDomain.ErrKeyService, message, err)
}
