package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/handler"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/internal/server"
	"github.com/MKhiriev/clash-augmenter/internal/service"
	"github.com/MKhiriev/clash-augmenter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("clash-augmenter-server")
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

	log.Debug().Any("config", cfg).Msg("received configs")

	registry, err := presets.NewRegistryFromFile(cfg.App.PresetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading presets")
	}

	services, err := service.NewServices(registry, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
