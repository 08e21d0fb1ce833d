package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/url"

	"gocloud.dev/secrets"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Keeper is the subset of *secrets.Keeper used by KeeperKeyService.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KeeperKeyService implements KeyService on top of a gocloud.dev secrets keeper.
//
// Keepers only expose wrap and unwrap, so data keys are drawn from crypto/rand
// locally and wrapped by the keeper. The keeper URL selects the backend:
// gcpkms://, awskms://, azurekeyvault://, hashivault:// or base64key://.
type KeeperKeyService struct {
	keeper Keeper
}

// OpenKeeperKeyService opens a keeper for keyURL.
func OpenKeeperKeyService(ctx context.Context, keyURL string) (*KeeperKeyService, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return NewKeeperKeyService(keeper), nil
}

// KeeperKeyID returns the form of keyURL that is safe to record in metadata and
// logs. base64key:// URLs embed the key itself, so only the scheme is kept.
func KeeperKeyID(keyURL string) string {
	u, err := url.Parse(keyURL)
	if err != nil {
		return ""
	}
	if u.Scheme == "base64key" {
		return "base64key://"
	}
	return keyURL
}

// NewKeeperKeyService wraps an already opened keeper.
func NewKeeperKeyService(keeper Keeper) *KeeperKeyService {
	return &KeeperKeyService{keeper: keeper}
}

// GenerateDataKey draws a random data key and wraps it with the keeper.
// The key id is part of the keeper URL, so keyID is not consulted.
func (k *KeeperKeyService) GenerateDataKey(ctx context.Context, keyID string) ([]byte, []byte, error) {
	dek := make([]byte, encryptionDomain.KeySize)
	if _, err := rand.Read(dek); err != nil {
		return nil, nil, fmt.Errorf("failed to generate data key: %w", err)
	}

	wrapped, err := k.keeper.Encrypt(ctx, dek)
	if err != nil {
		encryptionDomain.Zero(dek)
		return nil, nil, fmt.Errorf("%w: keeper encrypt: %v", encryptionDomain.ErrKeyService, err)
	}
	return dek, wrapped, nil
}

// Decrypt unwraps a data key with the keeper.
func (k *KeeperKeyService) Decrypt(ctx context.Context, keyID string, wrapped []byte) ([]byte, error) {
	dek, err := k.keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: keeper decrypt: %v", encryptionDomain.ErrKeyService, err)
	}
	return dek, nil
}

// Close releases the keeper.
func (k *KeeperKeyService) Close() error {
	return k.keeper.Close()
}
