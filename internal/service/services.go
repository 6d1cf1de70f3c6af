package service

import (
	"github.com/MKhiriev/go-ipass/internal/archive"
	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/validators"
	"github.com/MKhiriev/go-ipass/models"
)

type Services struct {
	VaultService   VaultService
	ArchiveService ArchiveService
	AppInfoService AppInfoService
}

// NewServices wires the vault and archive services over storages using the
// scheme and archive settings from cfg.
func NewServices(storages *store.Storages, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	scheme, err := crypto.SchemeByName(cfg.Crypto.Scheme, crypto.Argon2Params{
		Time:    cfg.Crypto.ArgonTime,
		Memory:  cfg.Crypto.ArgonMemory,
		Threads: cfg.Crypto.ArgonThreads,
	})
	if err != nil {
		return nil, err
	}

	validator := validators.NewEntryValidator()
	compressor := archive.NewGzipCompressor(cfg.Storage.CompressionLevel)

	return &Services{
		VaultService:   NewVaultService(storages.Entries, scheme, validator, logger),
		ArchiveService: NewArchiveService(storages.Entries, compressor, validator, cfg.Storage.ArchiveName(), logger),
		AppInfoService: NewAppInfoService(build, cfg, logger),
	}, nil
}
