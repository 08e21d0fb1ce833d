// Package domain defines the types shared by every encryption provider: provider
// identifiers, the metadata that travels with ciphertext, the key service contract
// and the error taxonomy.
package domain

// Provider identifies which encryption provider produced a ciphertext.
//
// The provider recorded in metadata is the only value consulted when routing a
// decryption; the algorithm tag is informational.
type Provider string

const (
	// ProviderLocal encrypts with a long-lived master key held in process memory.
	ProviderLocal Provider = "local"

	// ProviderKMS encrypts with a per-operation data key minted and wrapped by a
	// remote key management service.
	ProviderKMS Provider = "kms"
)

// String returns the provider identifier.
func (p Provider) String() string {
	return string(p)
}

// AlgorithmAES256GCM is the algorithm tag recorded by the local provider.
const AlgorithmAES256GCM = "aes-256-gcm"

// Sizes of the AES-256-GCM frame: nonce || tag || body.
const (
	// KeySize is the size in bytes of master keys and data keys.
	KeySize = 32
	// NonceSize is the size in bytes of the random GCM nonce.
	NonceSize = 12
	// TagSize is the size in bytes of the GCM authentication tag.
	TagSize = 16
	// MinCiphertextSize is the size of a frame that carries an empty plaintext.
	MinCiphertextSize = NonceSize + TagSize
	// LocalKeyHexLength is the length of a hex-encoded master key.
	LocalKeyHexLength = KeySize * 2
)
