package service

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/models"
)

type clientPresetService struct {
	adapter adapter.AugmentAdapter

	logger *logger.Logger
}

func NewClientPresetService(serverAdapter adapter.AugmentAdapter, logger *logger.Logger) PresetService {
	return &clientPresetService{adapter: serverAdapter, logger: logger}
}

func (c *clientPresetService) ListPresets(ctx context.Context) ([]models.PresetSummary, error) {
	summaries, err := c.adapter.ListPresets(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return summaries, nil
}

func (c *clientPresetService) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	preset, err := c.adapter.GetPreset(ctx, name)
	if err != nil {
		return models.Preset{}, mapAdapterError(err)
	}
	return preset, nil
}
