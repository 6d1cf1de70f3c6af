package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClientConfig(t *testing.T, scheme string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Storage: config.ClientStorage{
			VaultDir:   t.TempDir(),
			EntryExt:   "ipass",
			ArchiveExt: "ipassx",
		},
		Crypto: config.ClientCrypto{
			Scheme:       scheme,
			ArgonTime:    testArgon2Params.Time,
			ArgonMemory:  testArgon2Params.Memory,
			ArgonThreads: testArgon2Params.Threads,
		},
	}
}

func TestNewServices(t *testing.T) {
	cfg := testClientConfig(t, crypto.HardenedSchemeName)
	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, services.VaultService.Create(ctx, master, "bank", models.EntryRecord{Username: "alice", Password: "p@ss"}))

	report, err := services.ArchiveService.Export(ctx, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Exported)
	assert.Equal(t, "export.ipassx", filepath.Base(report.Path))
	assert.Equal(t, "N/A", services.AppInfoService.GetAppVersion(ctx))
}

func TestNewServices_UnknownScheme(t *testing.T) {
	cfg := testClientConfig(t, "rot13")
	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrUnknownScheme)
}
