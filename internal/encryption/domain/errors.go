package domain

import (
	"github.com/allisson/docseal/internal/errors"
)

// Encryption error definitions.
//
// Every error wraps one of the application base errors so callers can classify
// failures with errors.Is. Messages never include plaintext or key material.
var (
	// ErrInvalidKeyFormat indicates a master key is not 64 hex characters (32 bytes).
	ErrInvalidKeyFormat = errors.Wrap(errors.ErrInvalidInput, "invalid key format")

	// ErrConfiguration indicates the provider configuration is missing or invalid.
	ErrConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid encryption configuration")

	// ErrMalformedInput indicates a ciphertext shorter than the minimum frame or an
	// undecodable text payload.
	ErrMalformedInput = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrAuthenticationFailed indicates the authentication tag did not verify.
	//
	// Causes include tampering, corruption and decrypting with the wrong key. The
	// specific cause is not disclosed.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "authentication failed")

	// ErrProviderMismatch indicates metadata names a provider other than the one asked to decrypt.
	ErrProviderMismatch = errors.Wrap(errors.ErrInvalidInput, "encryption provider mismatch")

	// ErrMissingWrappedKey indicates kms metadata without a usable wrapped data key.
	ErrMissingWrappedKey = errors.Wrap(errors.ErrInvalidInput, "missing wrapped key")

	// ErrKeyService indicates the remote key service call failed or returned unusable key material.
	ErrKeyService = errors.Wrap(errors.ErrUnavailable, "key service error")
)
