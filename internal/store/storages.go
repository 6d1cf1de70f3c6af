package store

import (
	"fmt"

	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
)

// Storages groups the storage backends handed to the service layer.
type Storages struct {
	// Entries is the vault directory holding one file per entry.
	Entries EntryStorage
}

// NewStorages opens the vault directory described by cfg, creating it if it
// does not exist yet.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("vault_dir", cfg.VaultDir).Msg("opening vault storage...")

	entries, err := NewEntryFileStorage(cfg.VaultDir, cfg.EntryExt, logger)
	if err != nil {
		return nil, fmt.Errorf("open vault directory: %w", err)
	}

	return &Storages{
		Entries: entries,
	}, nil
}
