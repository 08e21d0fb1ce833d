package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// AESGCMCipher frames AES-256-GCM ciphertexts in the layout shared by every provider:
//
//	offset 0  length 12  nonce
//	offset 12 length 16  authentication tag
//	offset 28 variable   ciphertext body (same length as the plaintext)
//
// No associated data is bound. A fresh random nonce is drawn for every Seal, so
// sealing the same plaintext twice yields different frames.
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Each Seal generates its nonce independently.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes. The caller keeps ownership of key and may zero
// it once the cipher has been created; the expanded key schedule lives inside the
// cipher for as long as the cipher is reachable.
//
// Returns ErrInvalidKeyFormat if the key is not 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != encryptionDomain.KeySize {
		return nil, fmt.Errorf(
			"%w: key must be %d bytes, got %d",
			encryptionDomain.ErrInvalidKeyFormat,
			encryptionDomain.KeySize,
			len(key),
		)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, encryptionDomain.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce || tag || body.
//
// An empty plaintext produces a 28-byte frame.
func (a *AESGCMCipher) Seal(plaintext []byte) ([]byte, error) {
	framed := make([]byte, encryptionDomain.MinCiphertextSize+len(plaintext))

	nonce := framed[:encryptionDomain.NonceSize]
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM appends the tag after the body; move it in front of the body.
	sealed := a.aead.Seal(nil, nonce, plaintext, nil)
	bodyLen := len(sealed) - encryptionDomain.TagSize
	copy(framed[encryptionDomain.NonceSize:encryptionDomain.MinCiphertextSize], sealed[bodyLen:])
	copy(framed[encryptionDomain.MinCiphertextSize:], sealed[:bodyLen])

	return framed, nil
}

// Open verifies and decrypts a frame produced by Seal.
//
// Returns ErrMalformedInput if the frame is shorter than 28 bytes and
// ErrAuthenticationFailed if the tag does not verify. No plaintext is returned on
// failure.
func (a *AESGCMCipher) Open(framed []byte) ([]byte, error) {
	if len(framed) < encryptionDomain.MinCiphertextSize {
		return nil, fmt.Errorf(
			"%w: ciphertext must be at least %d bytes, got %d",
			encryptionDomain.ErrMalformedInput,
			encryptionDomain.MinCiphertextSize,
			len(framed),
		)
	}

	nonce := framed[:encryptionDomain.NonceSize]
	tag := framed[encryptionDomain.NonceSize:encryptionDomain.MinCiphertextSize]
	body := framed[encryptionDomain.MinCiphertextSize:]

	// Reassemble body || tag, the layout crypto/cipher expects, and open in place.
	sealed := make([]byte, 0, len(body)+encryptionDomain.TagSize)
	sealed = append(sealed, body...)
	sealed = append(sealed, tag...)

	plaintext, err := a.aead.Open(sealed[:0], nonce, sealed, nil)
	if err != nil {
		return nil, encryptionDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Seal encrypts plaintext under key with a one-off cipher.
func Seal(key, plaintext []byte) ([]byte, error) {
	c, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}
	return c.Seal(plaintext)
}

// Open decrypts a frame under key with a one-off cipher.
func Open(key, framed []byte) ([]byte, error) {
	c, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}
	return c.Open(framed)
}
