// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the merge target for every configuration layer.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the vault directory layout and archive settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto selects the encryption scheme and its key derivation cost.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file diagnostics are appended to. Log lines never go
	// to stdout, which carries command output.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage describes where entries live and how archives are written.
type Storage struct {
	// VaultDir is the directory holding one file per entry.
	// Env: STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`

	// EntryExt is the file extension of entry files, without the dot.
	// Env: STORAGE_ENTRY_EXT
	EntryExt string `env:"ENTRY_EXT"`

	// ArchiveExt is the file extension of export archives, without the dot.
	// Env: STORAGE_ARCHIVE_EXT
	ArchiveExt string `env:"ARCHIVE_EXT"`

	// SyncFile is the marker file holding the sync directory.
	// Env: STORAGE_SYNC_FILE
	SyncFile string `env:"SYNC_FILE"`

	// CompressionLevel is a compress/gzip level, from -2 (Huffman only)
	// through 9. Zero stores the archive uncompressed. Nil leaves the layer
	// below in effect.
	// Env: STORAGE_COMPRESSION_LEVEL
	CompressionLevel *int `env:"COMPRESSION_LEVEL"`
}

// Crypto selects the entry encryption scheme.
type Crypto struct {
	// Scheme is "legacy" or "hardened".
	// Env: CRYPTO_SCHEME
	Scheme string `env:"SCHEME"`

	// ArgonTime, ArgonMemory (KiB) and ArgonThreads tune Argon2id for the
	// hardened scheme.
	// Env: CRYPTO_ARGON_TIME, CRYPTO_ARGON_MEMORY, CRYPTO_ARGON_THREADS
	ArgonTime    uint32 `env:"ARGON_TIME"`
	ArgonMemory  uint32 `env:"ARGON_MEMORY"`
	ArgonThreads uint8  `env:"ARGON_THREADS"`
}

// GetStructuredConfig merges defaults, the JSON file, the environment and
// the already parsed flags (see [BindFlags]) into one config.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
