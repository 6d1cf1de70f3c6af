package config

import (
	"compress/gzip"
	"fmt"
)

// ClientApp holds logging settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientStorage groups vault storage settings.
type ClientStorage struct {
	// VaultDir is the absolute vault directory.
	VaultDir string
	// EntryExt is the entry file extension without the dot.
	EntryExt string
	// ArchiveExt is the export archive extension without the dot.
	ArchiveExt string
	// SyncFile is the marker file holding the sync directory.
	SyncFile string
	// CompressionLevel is the gzip level for archives.
	CompressionLevel int
}

// ArchiveName is the file name exports are written to.
func (s ClientStorage) ArchiveName() string {
	return "export." + s.ArchiveExt
}

// ClientCrypto selects the encryption scheme.
type ClientCrypto struct {
	Scheme       string
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8
}

// ClientConfig is the validated configuration the CLI runs with.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Crypto  ClientCrypto
}

// GetClientConfig merges every layer, expands "~" in paths and validates
// the result. flags is the config returned by [BindFlags] after the flag set
// was parsed; it may be nil.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg, userHome())
}

func newClientConfig(cfg *StructuredConfig, home string) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  expandHome(cfg.App.LogFile, home),
		},
		Storage: ClientStorage{
			VaultDir:         expandHome(cfg.Storage.VaultDir, home),
			EntryExt:         cfg.Storage.EntryExt,
			ArchiveExt:       cfg.Storage.ArchiveExt,
			SyncFile:         expandHome(cfg.Storage.SyncFile, home),
			CompressionLevel: compressionLevel(cfg.Storage.CompressionLevel),
		},
		Crypto: ClientCrypto{
			Scheme:       cfg.Crypto.Scheme,
			ArgonTime:    cfg.Crypto.ArgonTime,
			ArgonMemory:  cfg.Crypto.ArgonMemory,
			ArgonThreads: cfg.Crypto.ArgonThreads,
		},
	}

	return clientCfg, clientCfg.validate()
}

func compressionLevel(level *int) int {
	if level == nil {
		return gzip.DefaultCompression
	}
	return *level
}
