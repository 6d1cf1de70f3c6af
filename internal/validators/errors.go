package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntryName  = errors.New("invalid entry name")
	ErrEmptyCiphertext   = errors.New("ciphertext is required")
	ErrInvalidCiphertext = errors.New("ciphertext is not valid hex")
)
