// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntryRecord is the decrypted payload of a single vault entry.
//
// The record is serialized as "username;password" before encryption, so a
// username containing ';' does not survive a round trip: everything after
// the first ';' is read back as the password.
type EntryRecord struct {
	// Username is the login identifier stored in the entry.
	Username string

	// Password is the secret stored in the entry.
	Password string
}

// Field selects one of the two mutable fields of an [EntryRecord].
type Field int

const (
	// FieldUsername selects [EntryRecord.Username].
	FieldUsername Field = iota + 1

	// FieldPassword selects [EntryRecord.Password].
	FieldPassword
)

// String returns the lower-case field name used in logs and messages.
func (f Field) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldPassword:
		return "password"
	default:
		return "unknown"
	}
}

// Get returns the value of field f in r.
func (r EntryRecord) Get(f Field) string {
	if f == FieldUsername {
		return r.Username
	}
	return r.Password
}

// With returns a copy of r with field f replaced by value.
func (r EntryRecord) With(f Field, value string) EntryRecord {
	if f == FieldUsername {
		r.Username = value
	} else {
		r.Password = value
	}
	return r
}
