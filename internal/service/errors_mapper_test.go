package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/archive"
	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMapLayerError(t *testing.T) {
	plain := errors.New("disk full")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"duplicate", store.ErrEntryAlreadyExists, ErrDuplicateEntry},
		{"not found", fmt.Errorf("load: %w", store.ErrEntryNotFound), ErrNotFound},
		{"auth", fmt.Errorf("decrypt entry: %w", crypto.ErrAuthenticationFailed), ErrAuthenticationFailure},
		{"missing salt", fmt.Errorf("load vault salt: %w", store.ErrSaltNotFound), ErrAuthenticationFailure},
		{"name", validators.ErrInvalidEntryName, ErrInvalidEntryName},
		{"archive wins over encoding", fmt.Errorf("%w: %w", archive.ErrMalformedArchive, codec.ErrMalformedEncoding), ErrMalformedArchive},
		{"encoding", codec.ErrMalformedEncoding, ErrMalformedEncoding},
		{"record", codec.ErrMalformedRecord, ErrMalformedRecord},
		{"passthrough", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapLayerError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "cause must stay reachable")
			assert.Equal(t, tt.in.Error(), got.Error())
		})
	}
}
