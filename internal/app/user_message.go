package app

import (
	"errors"

	"github.com/MKhiriev/go-ipass/internal/service"
)

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrAuthenticationFailure, MsgAuthenticationFailure},
	{service.ErrDuplicateEntry, MsgDuplicateEntry},
	{service.ErrNotFound, MsgNotFound},
	{service.ErrInvalidEntryName, MsgInvalidEntryName},
	{service.ErrMalformedArchive, MsgMalformedArchive},
	{service.ErrMalformedEncoding, MsgMalformedEncoding},
	{service.ErrMalformedRecord, MsgMalformedRecord},
	{service.ErrArchiveNotFound, MsgArchiveNotFound},
	{service.ErrSaltMismatch, MsgSaltMismatch},
}

// UserMessage returns the fixed message shown for err, or "" when err is
// not one of the service errors. Callers then print err itself.
func UserMessage(err error) string {
	for _, um := range userMessages {
		if errors.Is(err, um.err) {
			return um.msg
		}
	}
	return ""
}
