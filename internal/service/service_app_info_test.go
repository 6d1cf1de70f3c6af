package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{VaultDir: "/home/u/.IPass"},
		Crypto:  config.ClientCrypto{Scheme: "legacy"},
	}
	svc := NewAppInfoService(models.NewAppBuildInfo("1.4.2", "", "abc123"), cfg, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, "1.4.2", svc.GetAppVersion(ctx))

	info := svc.GetAppInfo(ctx)
	assert.Equal(t, "legacy", info.Scheme)
	assert.Equal(t, "/home/u/.IPass", info.VaultDir)
	assert.Equal(t, "N/A", info.Build.BuildDate())
	assert.Equal(t, "abc123", info.Build.BuildCommit())
	assert.Equal(t, "Major 1 Sub 4 Bugfix 2", info.Build.Explain())
}
