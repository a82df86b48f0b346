package service

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/models"
)

type presetService struct {
	registry *presets.Registry

	logger *logger.Logger
}

func NewPresetService(registry *presets.Registry, logger *logger.Logger) PresetService {
	return &presetService{
		registry: registry,
		logger:   logger,
	}
}

func (s *presetService) ListPresets(ctx context.Context) ([]models.PresetSummary, error) {
	return s.registry.Summaries(), nil
}

func (s *presetService) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	return s.registry.Lookup(name)
}
