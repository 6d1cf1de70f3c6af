package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty vault directory or clashing extensions).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates an unknown scheme or zero Argon2
	// parameters.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
