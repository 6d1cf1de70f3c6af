package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned when an AEAD tag does not verify:
	// wrong master passphrase, an entry stored under another name, or a
	// tampered file.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeyLength is returned when key material is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidNonceLength is returned when a nonce does not match the
	// cipher's nonce size.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidSalt is returned when a salted scheme gets a missing or
	// short salt.
	ErrInvalidSalt = errors.New("invalid vault salt")

	// ErrUnknownScheme is returned by [SchemeByName] for unsupported names.
	ErrUnknownScheme = errors.New("unknown crypto scheme")
)
