package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/docseal/internal/validation"
)

// Metadata travels alongside a ciphertext and records which provider produced it
// and what that provider needs to decrypt it.
//
// Metadata is created by Encrypt and must be handed back verbatim to Decrypt.
// WrappedKey is set if and only if Provider is ProviderKMS.
type Metadata struct {
	// Provider is the provider that produced the ciphertext; it alone drives decrypt dispatch.
	Provider Provider `json:"provider"`
	// Algorithm is the AEAD scheme name recorded by the local provider. Informational.
	Algorithm string `json:"algorithm,omitempty"`
	// KeyID identifies the remote master key that wrapped the data key (kms only).
	KeyID string `json:"keyId,omitempty"`
	// WrappedKey is the base64 data key in its remote-wrapped form (kms only).
	WrappedKey string `json:"wrappedKey,omitempty"`
	// EncryptedAt is the UTC time of encryption. Informational.
	EncryptedAt time.Time `json:"encryptedAt"`
}

// Validate checks the metadata names a provider.
func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Provider, validation.Required),
	)
}

// EncryptedPayload is the JSON text envelope produced by the text helpers.
type EncryptedPayload struct {
	// EncryptedData is the base64 encoded frame nonce || tag || body.
	EncryptedData string `json:"encryptedData"`
	// Metadata describes how EncryptedData was produced.
	Metadata Metadata `json:"metadata"`
}

// NewEncryptedPayload builds a text envelope from a ciphertext and its metadata.
func NewEncryptedPayload(ciphertext []byte, metadata *Metadata) *EncryptedPayload {
	return &EncryptedPayload{
		EncryptedData: base64.StdEncoding.EncodeToString(ciphertext),
		Metadata:      *metadata,
	}
}

// Validate checks the payload carries decodable data and a provider.
func (p *EncryptedPayload) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.EncryptedData, validation.Required, customValidation.Base64),
		validation.Field(&p.Metadata),
	)
}

// Encode serializes the payload as a single JSON string.
func (p *EncryptedPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode encrypted payload: %w", err)
	}
	return string(data), nil
}

// Ciphertext returns the decoded frame.
func (p *EncryptedPayload) Ciphertext() ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(p.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 data", ErrMalformedInput)
	}
	return ciphertext, nil
}

// DecodeEncryptedPayload parses a JSON text envelope produced by Encode.
// Returns ErrMalformedInput when the text is not a valid envelope.
func DecodeEncryptedPayload(text string) (*EncryptedPayload, error) {
	var payload EncryptedPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid payload encoding", ErrMalformedInput)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &payload, nil
}
