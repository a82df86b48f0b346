package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/service"
	"github.com/MKhiriev/clash-augmenter/internal/store"
	"github.com/MKhiriev/clash-augmenter/models"
)

const stdinProfileName = "stdin"

type App struct {
	services *service.Services
	storages *store.Storages

	cfg     config.IO
	profile string

	clipboard Clipboard
	logger    *logger.Logger
}

// NewApp builds the CLI runtime. profile labels diagnostics; when empty the
// input file name is used.
func NewApp(services *service.Services, storages *store.Storages, cfg config.IO, profile string, logger *logger.Logger) (*App, error) {
	if services == nil || services.AugmentService == nil {
		return nil, errNoServices
	}
	if storages == nil || storages.ProfileStorage == nil {
		return nil, errNoStorages
	}

	return &App{
		services:  services,
		storages:  storages,
		cfg:       cfg,
		profile:   profile,
		clipboard: systemClipboard{},
		logger:    logger,
	}, nil
}

// Run reads the input document, augments it and delivers the result. With
// clipboard output on and no explicit output path the document only goes to
// the clipboard.
func (a *App) Run(ctx context.Context) error {
	outFormat, err := a.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := a.storages.ProfileStorage.Load(ctx, a.cfg.Input, "")
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	profile := a.profileName()
	augmented, err := a.services.AugmentService.Augment(ctx, cfg, profile)
	if err != nil {
		return fmt.Errorf("augment profile %q: %w", profile, err)
	}

	if a.cfg.Clipboard {
		if err = a.copyToClipboard(augmented, outFormat); err != nil {
			return err
		}
		a.logger.Info().Str("profile", profile).Msg("augmented profile copied to clipboard")
		if a.cfg.Output == "" {
			return nil
		}
	}

	if err = a.storages.ProfileStorage.Save(ctx, a.cfg.Output, augmented, outFormat); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func (a *App) copyToClipboard(cfg *models.ClashConfig, format codec.Format) error {
	data, err := codec.Encode(cfg, format)
	if err != nil {
		return err
	}
	if err = a.clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// outputFormat picks the explicit format, then the output extension, then
// the input extension.
func (a *App) outputFormat() (codec.Format, error) {
	if a.cfg.Format != "" {
		return codec.ParseFormat(a.cfg.Format)
	}
	if !isStdStream(a.cfg.Output) {
		return codec.FormatFromPath(a.cfg.Output), nil
	}
	if !isStdStream(a.cfg.Input) {
		return codec.FormatFromPath(a.cfg.Input), nil
	}
	return codec.FormatYAML, nil
}

func (a *App) profileName() string {
	if a.profile != "" {
		return a.profile
	}
	if isStdStream(a.cfg.Input) {
		return stdinProfileName
	}
	base := filepath.Base(a.cfg.Input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isStdStream(path string) bool {
	return path == "" || path == "-"
}
