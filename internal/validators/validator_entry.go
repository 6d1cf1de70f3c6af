package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/models"
)

const (
	FieldEntryName  = "entry_name"
	FieldCiphertext = "ciphertext"
)

// forbiddenNameChars would escape the vault directory or break archive lines.
const forbiddenNameChars = "/\\\x00\r\n"

type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate accepts an entry name (string) or a [models.ArchivePair].
// For pairs, fields may narrow the check to FieldEntryName or
// FieldCiphertext; with no fields both are checked.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateEntryName(value)

	case models.ArchivePair:
		return v.validateArchivePair(value, fields...)
	case *models.ArchivePair:
		return v.validateArchivePair(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateArchivePair(pair models.ArchivePair, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryName, FieldCiphertext}
	}

	for _, field := range fields {
		switch field {
		case FieldEntryName:
			if err := validateEntryName(pair.Name); err != nil {
				return err
			}
		case FieldCiphertext:
			if pair.Ciphertext == "" {
				return ErrEmptyCiphertext
			}
			if _, err := codec.FromStorageText(pair.Ciphertext); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateEntryName rejects empty names, names starting with '.' (reserved
// for the salt and temp files), and names containing path separators, NUL
// or line breaks.
func validateEntryName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidEntryName)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with '.'", ErrInvalidEntryName, name)
	case strings.ContainsAny(name, forbiddenNameChars):
		return fmt.Errorf("%w: %q contains a path separator or control character", ErrInvalidEntryName, name)
	}
	return nil
}
