// Package domain defines the sensitive documents kept encrypted at rest. The
// content of a document is only ever persisted as ciphertext together with the
// encryption metadata needed to open it again.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
	"github.com/allisson/docseal/internal/errors"
	customValidation "github.com/allisson/docseal/internal/validation"
)

// Kind classifies a sensitive document.
type Kind string

// Supported document kinds.
const (
	KindIdentityNumber  Kind = "identity_number"
	KindCertificate     Kind = "certificate"
	KindReferenceLetter Kind = "reference_letter"
)

// Kinds lists every supported document kind.
var Kinds = []Kind{KindIdentityNumber, KindCertificate, KindReferenceLetter}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Document is an encrypted document owned by a marketplace user.
type Document struct {
	// ID is a UUIDv7, so ids sort by creation time.
	ID uuid.UUID
	// OwnerID identifies the user the document belongs to.
	OwnerID string
	Kind    Kind
	// FileName is the original file name supplied on upload.
	FileName    string
	ContentType string
	// Size is the plaintext size in bytes.
	Size int64
	// Ciphertext is the framed AES-256-GCM ciphertext of the content.
	Ciphertext []byte
	// Metadata records the provider that sealed Ciphertext.
	Metadata  encryptionDomain.Metadata
	CreatedAt time.Time
}

// StoreInput is the request to store a new document.
type StoreInput struct {
	OwnerID     string
	Kind        Kind
	FileName    string
	ContentType string
	Content     []byte
}

// Validate checks the input fields. The size limit is enforced by the use case.
func (s *StoreInput) Validate() error {
	kinds := make([]interface{}, 0, len(Kinds))
	for _, kind := range Kinds {
		kinds = append(kinds, kind)
	}

	err := validation.ValidateStruct(s,
		validation.Field(&s.OwnerID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&s.Kind, validation.Required, validation.In(kinds...)),
		validation.Field(&s.FileName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&s.ContentType, validation.Length(0, 255)),
		validation.Field(&s.Content, validation.Required),
	)
	if err != nil {
		return errors.Wrap(ErrInvalidDocument, err.Error())
	}
	return nil
}

// OpenedDocument is a document together with its decrypted content.
type OpenedDocument struct {
	Document *Document
	// Content is the decrypted content; callers should zero it once done.
	Content []byte
}
