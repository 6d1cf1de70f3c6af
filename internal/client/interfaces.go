// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one command line and returns the process exit code.
	Run(ctx context.Context, args []string) int
}

// Prompter reads answers from the user.
type Prompter interface {
	// Secret reads a line without echo.
	Secret(prompt string) (string, error)
	// Line reads a line with echo.
	Line(prompt string) (string, error)
}

// Browser runs the interactive browser.
type Browser interface {
	Browse(ctx context.Context, passphrase string) error
}

// PasswordGenerator produces passwords for entries added without one.
type PasswordGenerator interface {
	Generate() (string, error)
}

// IDGenerator produces invocation ids for log correlation.
type IDGenerator interface {
	Generate() string
}
