package client

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when the user declines a confirmation.
	ErrAborted = errors.New("aborted by user")
	// ErrPasswordsDoNotMatch is returned when a repeated secret differs.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	// ErrUsage marks invalid command lines.
	ErrUsage = errors.New("usage error")
)

type usageError struct {
	msg string
}

func usageErr(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) Is(target error) bool { return target == ErrUsage }
