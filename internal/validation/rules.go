// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	validation "github.com/jellydator/validation"
)

// HexKey validates that a string is a hex-encoded key of exactly Length characters.
// Upper and lower case digits are both accepted.
type HexKey struct {
	Length int
}

// Validate checks the value is a string of Length hex characters.
func (h HexKey) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_key_type", "must be a string")
	}

	if len(s) != h.Length {
		return validation.NewError("validation_hex_key_length", "must have the expected number of hex characters")
	}

	if _, err := hex.DecodeString(s); err != nil {
		return validation.NewError("validation_hex_key", "must contain only hex characters")
	}

	return nil
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Base64 validates that a string is standard base64. Empty strings are left to Required.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
