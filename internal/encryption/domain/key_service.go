package domain

import "context"

// KeyService is the remote key management capability used by the kms provider.
//
// The master key never leaves the service. Implementations return plaintext data
// keys that the caller owns and must scrub with Zero once the operation completes.
type KeyService interface {
	// GenerateDataKey mints a fresh 32-byte data key under the master key identified
	// by keyID and returns it in the clear together with its wrapped form.
	GenerateDataKey(ctx context.Context, keyID string) (plaintext, wrapped []byte, err error)

	// Decrypt unwraps a data key previously returned by GenerateDataKey.
	Decrypt(ctx context.Context, keyID string, wrapped []byte) ([]byte, error)

	// Close releases the underlying client.
	Close() error
}
