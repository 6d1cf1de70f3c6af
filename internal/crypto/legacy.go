// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
)

const (
	// KeySize is the size of every derived key in bytes.
	KeySize = 32

	// NonceSize is the size of a name-derived nonce in bytes.
	NonceSize = 12

	// nonceSeedSize is the length entry names are padded or cut to before
	// hashing.
	nonceSeedSize = 12

	// LegacySchemeName selects [NewLegacyScheme].
	LegacySchemeName = "legacy"
)

type sha256KeyDeriver struct{}

// NewSHA256KeyDeriver returns the legacy [KeyDeriver]: a single unsalted
// SHA-256 of the passphrase bytes. One hash per guess is all a brute-force
// attack costs; use the hardened scheme for new vaults that do not need
// compatibility.
func NewSHA256KeyDeriver() KeyDeriver {
	return sha256KeyDeriver{}
}

func (sha256KeyDeriver) DeriveKey(passphrase string) ([]byte, error) {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:], nil
}

type nameNonceDeriver struct{}

// NewNameNonceDeriver returns the [NonceDeriver] backed by [DeriveNonce].
func NewNameNonceDeriver() NonceDeriver {
	return nameNonceDeriver{}
}

func (nameNonceDeriver) DeriveNonce(name string) []byte {
	return DeriveNonce(name)
}

// DeriveNonce right-pads name with ASCII spaces to 12 bytes (or keeps only
// its first 12 bytes), hashes that with SHA-256 and returns the first 12
// bytes of the digest.
//
// Names that agree on their first 12 bytes share a nonce. Under one key this
// means nonce reuse between such entries; the legacy format depends on it and
// it is left as is.
func DeriveNonce(name string) []byte {
	seed := make([]byte, nonceSeedSize)
	n := copy(seed, name)
	for i := n; i < nonceSeedSize; i++ {
		seed[i] = ' '
	}

	sum := sha256.Sum256(seed)
	nonce := make([]byte, NonceSize)
	copy(nonce, sum[:NonceSize])
	return nonce
}

type gcmCipher struct{}

// NewGCMCipher returns an [EntryCipher] using AES-256-GCM with a 12-byte
// nonce and no associated data.
func NewGCMCipher() EntryCipher {
	return gcmCipher{}
}

func (gcmCipher) Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceLength, len(nonce), gcm.NonceSize())
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

func (gcmCipher) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceLength, len(nonce), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt entry: %w", ErrAuthenticationFailed)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// legacySealer composes the three legacy primitives.
type legacySealer struct {
	keys   KeyDeriver
	nonces NonceDeriver
	cipher EntryCipher
}

// NewLegacySealer returns the [EntrySealer] of the legacy scheme.
func NewLegacySealer() EntrySealer {
	return &legacySealer{
		keys:   NewSHA256KeyDeriver(),
		nonces: NewNameNonceDeriver(),
		cipher: NewGCMCipher(),
	}
}

func (s *legacySealer) DeriveKey(passphrase string) ([]byte, error) {
	return s.keys.DeriveKey(passphrase)
}

func (s *legacySealer) Seal(key []byte, name string, plaintext []byte) ([]byte, error) {
	return s.cipher.Encrypt(key, s.nonces.DeriveNonce(name), plaintext)
}

func (s *legacySealer) Open(key []byte, name string, ciphertext []byte) ([]byte, error) {
	return s.cipher.Decrypt(key, s.nonces.DeriveNonce(name), ciphertext)
}

type legacyScheme struct{}

// NewLegacyScheme returns the unsalted, deterministic [Scheme]. Encrypting
// the same record under the same name and passphrase always yields the same
// bytes.
func NewLegacyScheme() Scheme {
	return legacyScheme{}
}

func (legacyScheme) Name() string { return LegacySchemeName }
func (legacyScheme) Salted() bool { return false }

func (legacyScheme) NewSealer([]byte) (EntrySealer, error) {
	return NewLegacySealer(), nil
}
