package service

import "errors"

var (
	ErrDuplicateEntry        = errors.New("entry already exists")
	ErrNotFound              = errors.New("entry not found")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrInvalidEntryName      = errors.New("invalid entry name")

	ErrMalformedEncoding = errors.New("malformed entry encoding")
	ErrMalformedRecord   = errors.New("malformed entry record")
	ErrMalformedArchive  = errors.New("malformed archive")

	ErrArchiveNotFound = errors.New("archive not found")
	// ErrSaltMismatch is returned when an archive carries a vault salt that
	// differs from the salt of the destination vault.
	ErrSaltMismatch = errors.New("archive salt does not match vault salt")
)
