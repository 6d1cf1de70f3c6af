// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ArchivePair is one entry of an export archive: the entry name and its
// stored hex ciphertext, exactly as found in the vault directory.
type ArchivePair struct {
	Name       string
	Ciphertext string
}

// SkippedEntry describes an entry that was left out of an export because its
// stored text could not be decoded.
type SkippedEntry struct {
	Name string
	Err  error
}

// ExportReport summarizes a finished export.
type ExportReport struct {
	// Path is the archive file that was written.
	Path string

	// Exported is the number of entries written to the archive.
	Exported int

	// Skipped lists entries that were corrupt on disk and not exported.
	Skipped []SkippedEntry
}
