package service

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/models"
)

// AugmentService merges a preset's proxy groups and rules into a
// configuration document.
type AugmentService interface {
	// Augment validates cfg, merges the selected preset into it in place
	// and returns the same pointer. profileName only labels diagnostics.
	Augment(ctx context.Context, cfg *models.ClashConfig, profileName string, opts ...AugmentOption) (*models.ClashConfig, error)
}

// AugmentServiceWrapper defines middleware composition for AugmentService.
// Implementations wrap an existing AugmentService to add behavior such as
// validation or diagnostics.
type AugmentServiceWrapper interface {
	Wrap(AugmentService) AugmentService // returns a decorated AugmentService applying additional behavior
}

type PresetService interface {
	ListPresets(ctx context.Context) ([]models.PresetSummary, error)
	GetPreset(ctx context.Context, name string) (models.Preset, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
