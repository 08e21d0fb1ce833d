// Package repository implements document persistence for PostgreSQL and MySQL.
// Ciphertext is stored as bytes and the encryption metadata as JSON text, using
// the same field names as the text envelope.
package repository

import (
	"encoding/json"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
	apperrors "github.com/allisson/docseal/internal/errors"
)

func marshalMetadata(metadata encryptionDomain.Metadata) (string, error) {
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal encryption metadata")
	}
	return string(data), nil
}

func unmarshalMetadata(data string) (encryptionDomain.Metadata, error) {
	var metadata encryptionDomain.Metadata
	if err := json.Unmarshal([]byte(data), &metadata); err != nil {
		return metadata, apperrors.Wrap(err, "failed to unmarshal encryption metadata")
	}
	return metadata, nil
}
