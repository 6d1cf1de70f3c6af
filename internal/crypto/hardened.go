// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// SaltSize is the size of a freshly generated vault salt.
	SaltSize = 16

	// HardenedSchemeName selects [NewHardenedScheme].
	HardenedSchemeName = "hardened"
)

// Argon2Params are the Argon2id tuning parameters of the hardened scheme.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params returns the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// GenerateSalt reads [SaltSize] bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

type argon2KeyDeriver struct {
	salt   []byte
	params Argon2Params
}

// NewArgon2KeyDeriver returns a [KeyDeriver] running Argon2id over the
// passphrase with the vault salt.
func NewArgon2KeyDeriver(salt []byte, params Argon2Params) (KeyDeriver, error) {
	if len(salt) < SaltSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}
	return &argon2KeyDeriver{salt: salt, params: params}, nil
}

func (d *argon2KeyDeriver) DeriveKey(passphrase string) ([]byte, error) {
	return argon2.IDKey(
		[]byte(passphrase),
		d.salt,
		d.params.Time,
		d.params.Memory,
		d.params.Threads,
		KeySize,
	), nil
}

// hardenedSealer stores a random XChaCha20-Poly1305 nonce in front of each
// ciphertext: blob = nonce ‖ ciphertext ‖ tag. The entry name is the
// associated data.
type hardenedSealer struct {
	keys KeyDeriver
}

func (s *hardenedSealer) DeriveKey(passphrase string) ([]byte, error) {
	return s.keys.DeriveKey(passphrase)
}

func (s *hardenedSealer) Seal(key []byte, name string, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, []byte(name)), nil
}

func (s *hardenedSealer) Open(key []byte, name string, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	if len(ciphertext) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("ciphertext too short: %w", ErrAuthenticationFailed)
	}
	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("decrypt entry: %w", ErrAuthenticationFailed)
	}
	return plaintext, nil
}

type hardenedScheme struct {
	params Argon2Params
}

// NewHardenedScheme returns the salted [Scheme] with randomized nonces.
func NewHardenedScheme(params Argon2Params) Scheme {
	return &hardenedScheme{params: params}
}

func (s *hardenedScheme) Name() string { return HardenedSchemeName }
func (s *hardenedScheme) Salted() bool { return true }

func (s *hardenedScheme) NewSealer(salt []byte) (EntrySealer, error) {
	keys, err := NewArgon2KeyDeriver(salt, s.params)
	if err != nil {
		return nil, err
	}
	return &hardenedSealer{keys: keys}, nil
}

// SchemeByName returns the scheme selected by name; params only matter for
// the hardened scheme.
func SchemeByName(name string, params Argon2Params) (Scheme, error) {
	switch name {
	case LegacySchemeName, "":
		return NewLegacyScheme(), nil
	case HardenedSchemeName:
		return NewHardenedScheme(params), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// Zero overwrites b with zeros. Derived keys are wiped with it once an
// operation is done.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
