// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"compress/gzip"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is flattened.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	s := cfg.Storage
	if s.VaultDir == "" {
		return fmt.Errorf("%w: empty vault directory", ErrInvalidStorageConfigs)
	}
	if !validExt(s.EntryExt) || !validExt(s.ArchiveExt) || s.EntryExt == s.ArchiveExt {
		return fmt.Errorf("%w: extensions %q and %q", ErrInvalidStorageConfigs, s.EntryExt, s.ArchiveExt)
	}
	if s.CompressionLevel < gzip.HuffmanOnly || s.CompressionLevel > gzip.BestCompression {
		return fmt.Errorf("%w: compression level %d", ErrInvalidStorageConfigs, s.CompressionLevel)
	}

	c := cfg.Crypto
	switch c.Scheme {
	case "legacy":
	case "hardened":
		if c.ArgonTime == 0 || c.ArgonMemory == 0 || c.ArgonThreads == 0 {
			return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidCryptoConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidCryptoConfigs, c.Scheme)
	}

	return nil
}

func validExt(ext string) bool {
	return ext != "" && !strings.ContainsAny(ext, `./\`)
}
