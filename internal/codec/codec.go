// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts entry records to the plaintext bytes that get
// encrypted, and ciphertext bytes to the text stored in entry files.
//
// Record format: UTF-8 "username;password". Storage format: lowercase hex.
package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ipass/models"
)

// FieldSeparator splits username and password in a serialized record.
const FieldSeparator = ";"

var (
	// ErrMalformedRecord is returned when decrypted bytes hold no separator.
	ErrMalformedRecord = errors.New("malformed entry record")

	// ErrMalformedEncoding is returned when stored text is not valid hex.
	ErrMalformedEncoding = errors.New("malformed entry encoding")
)

// Serialize returns username + ";" + password.
func Serialize(record models.EntryRecord) []byte {
	b := make([]byte, 0, len(record.Username)+len(FieldSeparator)+len(record.Password))
	b = append(b, record.Username...)
	b = append(b, FieldSeparator...)
	b = append(b, record.Password...)
	return b
}

// Deserialize splits data on the first ";". Everything after it, further
// separators included, is the password.
func Deserialize(data []byte) (models.EntryRecord, error) {
	username, password, found := bytes.Cut(data, []byte(FieldSeparator))
	if !found {
		return models.EntryRecord{}, ErrMalformedRecord
	}

	return models.EntryRecord{
		Username: string(username),
		Password: string(password),
	}, nil
}

// ToStorageText returns the lowercase hex encoding of ciphertext.
func ToStorageText(ciphertext []byte) string {
	return hex.EncodeToString(ciphertext)
}

// FromStorageText decodes hex text read from an entry file. A trailing line
// break is tolerated; anything else that is not hex fails with
// [ErrMalformedEncoding].
func FromStorageText(text string) ([]byte, error) {
	text = strings.TrimRight(text, "\r\n")

	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}
	return b, nil
}
