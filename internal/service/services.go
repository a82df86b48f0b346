package service

import (
	"fmt"

	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
)

type Services struct {
	AugmentService AugmentService
	PresetService  PresetService
	AppInfoService AppInfoService
}

// NewServices assembles the service layer. The augment pipeline is
// validation → merge → diagnostics; hooks default to [LogDiagnostics].
func NewServices(registry *presets.Registry, cfg config.App, logger *logger.Logger, hooks ...DiagnosticHook) (*Services, error) {
	core, err := NewAugmentService(registry, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating augment service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	if len(hooks) == 0 {
		hooks = []DiagnosticHook{LogDiagnostics}
	}

	augment := NewAugmentDiagnosticsService(hooks...).Wrap(
		NewAugmentValidationService().Wrap(core),
	)

	return &Services{
		AugmentService: augment,
		PresetService:  NewPresetService(registry, logger),
		AppInfoService: appInfo,
	}, nil
}
