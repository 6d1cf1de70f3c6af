package service

import (
	"context"

	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/models"
)

type appInfoService struct {
	build  models.AppBuildInfo
	scheme string
	vault  string

	logger *logger.Logger
}

func NewAppInfoService(build models.AppBuildInfo, cfg *config.ClientConfig, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:  build,
		scheme: cfg.Crypto.Scheme,
		vault:  cfg.Storage.VaultDir,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.BuildVersion()
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Build:    s.build,
		Scheme:   s.scheme,
		VaultDir: s.vault,
	}
}
