package store

import "errors"

// Sentinel errors returned by [EntryStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when an operation targets an entry that
	// has no file in the vault directory.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrEntryAlreadyExists is returned when creating an entry whose file
	// is already present.
	ErrEntryAlreadyExists = errors.New("entry already exists")

	// ErrSaltNotFound is returned when the vault has no salt file yet.
	ErrSaltNotFound = errors.New("vault salt was not found")
)
