// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings of ipass and the mapping
// from service errors to them.
//
// Keeping every Msg* constant in one place keeps the wording of the CLI and
// the browser consistent.
package app

const (
	// MsgAuthenticationFailure is shown when an entry does not decrypt:
	// the master password is wrong or the file was tampered with.
	MsgAuthenticationFailure = "wrong master password or corrupted entry"

	// MsgDuplicateEntry is shown when create or rename targets a taken name.
	MsgDuplicateEntry = "an entry with this name already exists"

	// MsgNotFound is shown when the named entry is not in the vault.
	MsgNotFound = "no such entry"

	// MsgInvalidEntryName is shown for empty names, names starting with '.',
	// and names containing path separators or line breaks.
	MsgInvalidEntryName = "invalid entry name"

	// MsgMalformedEncoding is shown when an entry file is not valid hex.
	MsgMalformedEncoding = "entry file is corrupted"

	// MsgMalformedRecord is shown when an entry decrypts but is not a
	// username/password record.
	MsgMalformedRecord = "entry content is corrupted"

	// MsgMalformedArchive is shown when an import archive is unreadable.
	// Nothing is imported in that case.
	MsgMalformedArchive = "archive is corrupted; nothing was imported"

	// MsgArchiveNotFound is shown when there is no archive to import.
	MsgArchiveNotFound = "no archive found in that directory"

	// MsgSaltMismatch is shown when an archive from another hardened vault
	// is imported into a vault that already has its own salt.
	MsgSaltMismatch = "archive belongs to a different vault; import it into an empty vault"

	// MsgPasswordsDoNotMatch is shown when the confirmation prompt differs.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgAborted is shown when the user declines a confirmation.
	MsgAborted = "aborted"

	MsgUnexpectedError = "unexpected error"
)
