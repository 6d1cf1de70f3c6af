package config

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogLevel     = "info"
	defaultEntryExt     = "ipass"
	defaultArchiveExt   = "ipassx"
	defaultScheme       = "legacy"
	defaultArgonTime    = 1
	defaultArgonMemory  = 64 * 1024
	defaultArgonThreads = 4
)

// defaultConfig returns the built-in layer. Paths are rooted at home.
func defaultConfig(home string) *StructuredConfig {
	level := gzip.DefaultCompression

	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
			LogFile:  filepath.Join(home, ".ipass.log"),
		},
		Storage: Storage{
			VaultDir:   filepath.Join(home, ".IPass"),
			EntryExt:   defaultEntryExt,
			ArchiveExt: defaultArchiveExt,
			SyncFile:   filepath.Join(home, ".sync.ipass"),

			CompressionLevel: &level,
		},
		Crypto: Crypto{
			Scheme:       defaultScheme,
			ArgonTime:    defaultArgonTime,
			ArgonMemory:  defaultArgonMemory,
			ArgonThreads: defaultArgonThreads,
		},
	}
}

// userHome returns the home directory, or "." when it cannot be determined.
func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// expandHome replaces a leading "~" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
