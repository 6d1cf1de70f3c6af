package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-ipass/internal/client"
	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/tui"
	"github.com/MKhiriev/go-ipass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipass: error getting configs: %v\n", err)
		return 2
	}

	log, closeLog := logger.NewClientLogger("ipass", cfg.App.LogFile, cfg.App.LogLevel)
	defer closeLog()

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create vault storage")
		fmt.Fprintf(os.Stderr, "ipass: %v\n", err)
		return 1
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Error().Err(err).Msg("create services")
		fmt.Fprintf(os.Stderr, "ipass: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui := tui.New(services.VaultService, log)
	app := client.NewApp(services, ui, cfg, log)

	return app.Run(ctx, flag.Args())
}
