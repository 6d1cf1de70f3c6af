// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sethvargo/go-diceware/diceware"
)

const (
	// DefaultPasswordWords is the word count of generated passwords.
	DefaultPasswordWords = 6

	// DefaultPasswordSeparator joins generated words. It must never be ';',
	// the record field separator.
	DefaultPasswordSeparator = "-"
)

// PasswordGenerator builds diceware passphrases for entries created without
// an explicit password.
type PasswordGenerator struct {
	Words     int
	Separator string
}

func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{Words: DefaultPasswordWords, Separator: DefaultPasswordSeparator}
}

func (g *PasswordGenerator) Generate() (string, error) {
	if g.Words < 1 {
		return "", errors.New("password must have at least one word")
	}
	if strings.Contains(g.Separator, ";") {
		return "", fmt.Errorf("separator %q contains the record field separator", g.Separator)
	}

	words, err := diceware.Generate(g.Words)
	if err != nil {
		return "", fmt.Errorf("generate diceware words: %w", err)
	}
	return strings.Join(words, g.Separator), nil
}

// UUIDGenerator produces time-ordered ids that tie together the log lines of
// one CLI invocation.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. If the clock source fails it falls back to a
// random UUIDv4, which still serves as a correlation id.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
