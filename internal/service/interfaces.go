// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault operations on top of the crypto,
// codec and store layers.
//
// Every operation that touches plaintext takes the master passphrase as an
// explicit argument. The derived key lives for the duration of one call and
// is zeroed before returning; nothing is cached between calls.
package service

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-ipass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the single-entry side of the vault.
type VaultService interface {
	// Create encrypts record and stores it under name. It fails with
	// [ErrDuplicateEntry] if name is taken; the existing entry is untouched.
	Create(ctx context.Context, passphrase, name string, record models.EntryRecord) error

	// Read decrypts the entry stored under name. It fails with [ErrNotFound]
	// for an absent entry and [ErrAuthenticationFailure] for a wrong
	// passphrase or a tampered file.
	Read(ctx context.Context, passphrase, name string) (models.EntryRecord, error)

	// UpdateField decrypts name, replaces one field with mutate(old value)
	// and re-encrypts under the same name. The other field is untouched.
	UpdateField(ctx context.Context, passphrase, name string, field models.Field, mutate func(string) string) error

	// ChangePassword sets the password field of name.
	ChangePassword(ctx context.Context, passphrase, name, password string) error

	// ChangeUsername sets the username field of name.
	ChangeUsername(ctx context.Context, passphrase, name, username string) error

	// Rename moves an entry to newName, re-encrypting it for the new name
	// and removing the old file.
	Rename(ctx context.Context, passphrase, oldName, newName string) error

	// Remove deletes the entry. There is no undo.
	Remove(ctx context.Context, name string) error

	// Exists reports whether name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// List yields every entry name. Each range re-scans the vault.
	List(ctx context.Context) iter.Seq2[string, error]

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// ArchiveService moves the whole vault in and out of one archive file
// without decrypting anything.
type ArchiveService interface {
	// Export writes every entry to dir/export.<ext>. Entries whose stored
	// text is corrupt are skipped and reported.
	Export(ctx context.Context, dir string) (models.ExportReport, error)

	// Import validates dir/export.<ext> completely, then writes every entry
	// verbatim, overwriting entries with the same name. It returns the
	// number of imported entries.
	Import(ctx context.Context, dir string) (int, error)
}

// AppInfoService reports what binary is running against which vault.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
