package service

import (
	"context"
	"fmt"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// encryptText runs text through svc.Encrypt and encodes the result as a JSON envelope.
func encryptText(ctx context.Context, svc Service, text string) (string, error) {
	ciphertext, metadata, err := svc.Encrypt(ctx, []byte(text))
	if err != nil {
		return "", err
	}
	return encryptionDomain.NewEncryptedPayload(ciphertext, metadata).Encode()
}

// decryptText decodes a JSON envelope and runs it through svc.Decrypt.
func decryptText(ctx context.Context, svc Service, payload string) (string, error) {
	envelope, err := encryptionDomain.DecodeEncryptedPayload(payload)
	if err != nil {
		return "", err
	}

	ciphertext, err := envelope.Ciphertext()
	if err != nil {
		return "", err
	}

	plaintext, err := svc.Decrypt(ctx, ciphertext, &envelope.Metadata)
	if err != nil {
		return "", err
	}
	defer encryptionDomain.Zero(plaintext)

	return string(plaintext), nil
}

// checkProvider rejects metadata that was not produced by want.
func checkProvider(metadata *encryptionDomain.Metadata, want encryptionDomain.Provider) error {
	if metadata == nil {
		return fmt.Errorf("%w: metadata is required", encryptionDomain.ErrProviderMismatch)
	}
	if metadata.Provider != want {
		return fmt.Errorf(
			"%w: expected %q, got %q",
			encryptionDomain.ErrProviderMismatch,
			want,
			metadata.Provider,
		)
	}
	return nil
}
