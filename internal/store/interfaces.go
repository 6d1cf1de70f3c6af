// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"iter"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryStorage maps entry names to the stored text of their ciphertext.
// The vault directory is the only source of truth: there is no index, and
// every listing re-reads the directory.
//
// Implementations know nothing about encryption; they move opaque text.
// Entry names must be validated by the caller.
type EntryStorage interface {
	// Exists reports whether an entry file for name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// Load returns the stored text of name, or [ErrEntryNotFound].
	Load(ctx context.Context, name string) (string, error)

	// Create writes a new entry and fails with [ErrEntryAlreadyExists]
	// instead of overwriting.
	Create(ctx context.Context, name, text string) error

	// Replace atomically overwrites an existing entry and fails with
	// [ErrEntryNotFound] if there is none.
	Replace(ctx context.Context, name, text string) error

	// Put atomically creates or overwrites an entry.
	Put(ctx context.Context, name, text string) error

	// Delete removes an entry, or fails with [ErrEntryNotFound].
	Delete(ctx context.Context, name string) error

	// Names yields every stored entry name in directory order. The sequence
	// is lazy and each range over it re-scans the directory.
	Names(ctx context.Context) iter.Seq2[string, error]

	// LoadSalt returns the vault salt, or [ErrSaltNotFound].
	LoadSalt(ctx context.Context) ([]byte, error)

	// SaveSalt atomically writes the vault salt.
	SaveSalt(ctx context.Context, salt []byte) error
}
