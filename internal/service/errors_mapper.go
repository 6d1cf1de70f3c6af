// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-ipass/internal/archive"
	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/validators"
)

// kindError tags a lower layer error with a service error. The message is
// the cause's; errors.Is matches both.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string   { return e.cause.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }

func withKind(kind, cause error) error {
	return &kindError{kind: kind, cause: cause}
}

// mapLayerError translates store, crypto, codec, archive and validator errors
// into the service errors. Anything else (I/O, context) is returned as is.
func mapLayerError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrEntryAlreadyExists):
		return withKind(ErrDuplicateEntry, err)
	case errors.Is(err, store.ErrEntryNotFound):
		return withKind(ErrNotFound, err)
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return withKind(ErrAuthenticationFailure, err)
	case errors.Is(err, store.ErrSaltNotFound):
		// Entries of a salted vault without its salt can never be opened.
		return withKind(ErrAuthenticationFailure, err)
	case errors.Is(err, validators.ErrInvalidEntryName):
		return withKind(ErrInvalidEntryName, err)
	case errors.Is(err, archive.ErrMalformedArchive):
		return withKind(ErrMalformedArchive, err)
	case errors.Is(err, codec.ErrMalformedEncoding):
		return withKind(ErrMalformedEncoding, err)
	case errors.Is(err, codec.ErrMalformedRecord):
		return withKind(ErrMalformedRecord, err)
	}

	return err
}
