package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/client"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/internal/service"
	"github.com/MKhiriev/clash-augmenter/internal/store"
	"github.com/MKhiriev/clash-augmenter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewConsoleLogger("clash-augmenter")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.BuildVersion() != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	leveled, err := log.AtLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	printBuildInfo(buildInfo, log)

	services, err := newServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	app, err := client.NewApp(services, store.NewStorages(log), cfg.IO, cfg.App.Profile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("augment failed")
	}
}

// newServices augments locally unless a remote server address is configured.
func newServices(cfg *config.StructuredConfig, log *logger.Logger) (*service.Services, error) {
	if cfg.Adapter.HTTPAddress != "" {
		serverAdapter, err := adapter.NewHTTPAugmentAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create augment adapter: %w", err)
		}
		return service.NewClientServices(serverAdapter, cfg.App, log)
	}

	registry, err := presets.NewRegistryFromFile(cfg.App.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	return service.NewServices(registry, cfg.App, log)
}

// printBuildInfo goes to the log, stdout carries the document.
func printBuildInfo(info models.AppBuildInfo, log *logger.Logger) {
	log.Debug().
		Str("version", orNA(info.BuildVersion())).
		Str("date", orNA(info.BuildDate())).
		Str("commit", orNA(info.BuildCommit())).
		Msg("build info")
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
