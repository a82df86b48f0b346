package service

import (
	"fmt"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
)

// NewClientServices assembles a service layer that delegates augmenting and
// preset lookups to a remote server through serverAdapter. Documents are still
// validated locally so an empty profile never leaves the machine.
func NewClientServices(serverAdapter adapter.AugmentAdapter, cfg config.App, logger *logger.Logger, hooks ...DiagnosticHook) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	if len(hooks) == 0 {
		hooks = []DiagnosticHook{LogDiagnostics}
	}

	remote, err := NewClientAugmentService(serverAdapter, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating augment service: %w", err)
	}

	augment := NewAugmentDiagnosticsService(hooks...).Wrap(
		NewAugmentValidationService().Wrap(remote),
	)

	return &Services{
		AugmentService: augment,
		PresetService:  NewClientPresetService(serverAdapter, logger),
		AppInfoService: appInfo,
	}, nil
}
