// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across ipass.
//
// The Logger type embeds zerolog.Logger so Debug, Info, Warn, Error and the
// rest of the zerolog API are available directly on *Logger. Every CLI
// invocation gets a child logger carrying the command name and an
// invocation id, see [Logger.ForInvocation].
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON *Logger writing to w at the given level. An empty
// or unknown level falls back to info.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string, w io.Writer, level string) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger appends to the file at path so log lines never mix with
// command output. If the file cannot be opened it falls back to stderr.
// The returned close function releases the file; it is safe to call when
// the fallback is in use.
func NewClientLogger(role, path, level string) (*Logger, func() error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
				w = f
				closeFn = f.Close
			}
		}
	}

	return NewLogger(role, w, level), closeFn
}

// ParseLevel converts a textual level into a zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForInvocation returns a child logger tagged with the command being run and
// the id of this invocation.
func (l *Logger) ForInvocation(command, invocationID string) *Logger {
	return &Logger{l.With().
		Str("command", command).
		Str("invocation", invocationID).
		Logger()}
}

// WithContext attaches the logger to ctx so it can be recovered with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx. When none is attached,
// zerolog's disabled logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
