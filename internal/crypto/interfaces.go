// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns a master passphrase and an entry name into the
// authenticated encryption of that entry's payload.
//
// The pieces are kept separate so each can be tested on its own:
//
//	key   = KeyDeriver.DeriveKey(passphrase)
//	nonce = NonceDeriver.DeriveNonce(name)
//	ct    = EntryCipher.Encrypt(key, nonce, plaintext)
//
// An [EntrySealer] composes them for one [Scheme]. Two schemes exist: the
// legacy scheme (unsalted SHA-256 key, name-derived nonce, AES-256-GCM),
// which is bit-compatible with existing vaults, and the hardened scheme
// (Argon2id with a per-vault salt, random XChaCha20-Poly1305 nonce bound to
// the entry name).
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master passphrase into a 32-byte symmetric key.
type KeyDeriver interface {
	// DeriveKey returns the key for passphrase. The same passphrase always
	// produces the same key for the same deriver.
	DeriveKey(passphrase string) ([]byte, error)
}

// NonceDeriver turns an entry name into a 12-byte nonce, deterministically.
type NonceDeriver interface {
	DeriveNonce(name string) []byte
}

// EntryCipher is an AEAD with a 256-bit key and a 96-bit nonce, used
// without associated data.
type EntryCipher interface {
	// Encrypt returns ciphertext with the authentication tag appended.
	Encrypt(key, nonce, plaintext []byte) ([]byte, error)

	// Decrypt returns the plaintext, or an error wrapping
	// [ErrAuthenticationFailed] when ciphertext was not produced with the
	// same key and nonce. It never returns unauthenticated bytes.
	Decrypt(key, nonce, ciphertext []byte) ([]byte, error)
}

// EntrySealer encrypts and decrypts entry payloads under a key derived from
// the master passphrase. The entry name is part of the input on both sides:
// a ciphertext only opens under the name it was sealed for.
type EntrySealer interface {
	DeriveKey(passphrase string) ([]byte, error)
	Seal(key []byte, name string, plaintext []byte) ([]byte, error)
	Open(key []byte, name string, ciphertext []byte) ([]byte, error)
}

// Scheme builds the [EntrySealer] for a vault.
type Scheme interface {
	// Name is the configuration value selecting this scheme.
	Name() string

	// Salted reports whether the scheme needs a persisted per-vault salt.
	Salted() bool

	// NewSealer returns a sealer for a vault with the given salt. Unsalted
	// schemes ignore salt.
	NewSealer(salt []byte) (EntrySealer, error)
}
