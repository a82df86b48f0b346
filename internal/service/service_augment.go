// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/models"
)

type augmentService struct {
	registry *presets.Registry
	defaults augmentOptions

	logger *logger.Logger
}

// NewAugmentService returns the merging core of the augmenter. It does not
// validate its input; wrap it with [NewAugmentValidationService].
//
// cfg.Preset names the default preset and must exist in registry;
// cfg.GroupMerge, when set, overrides every preset's merge direction.
func NewAugmentService(registry *presets.Registry, cfg config.App, logger *logger.Logger) (AugmentService, error) {
	if _, err := registry.Lookup(cfg.Preset); err != nil {
		return nil, fmt.Errorf("default preset: %w", err)
	}

	defaults := augmentOptions{preset: cfg.Preset}
	if cfg.GroupMerge != "" {
		direction, err := models.ParseMergeDirection(cfg.GroupMerge)
		if err != nil {
			return nil, fmt.Errorf("default group merge: %w", err)
		}
		defaults.groupMerge = direction
	}

	return &augmentService{
		registry: registry,
		defaults: defaults,
		logger:   logger,
	}, nil
}

func (s *augmentService) Augment(ctx context.Context, cfg *models.ClashConfig, profileName string, opts ...AugmentOption) (*models.ClashConfig, error) {
	log := logger.FromContext(ctx)
	o := resolveOptions(s.defaults, opts)

	preset, err := s.registry.Lookup(o.preset)
	if err != nil {
		return nil, fmt.Errorf("error selecting preset: %w", err)
	}

	direction := preset.GroupMerge
	if o.groupMerge != "" {
		direction = o.groupMerge
	}

	log.Debug().
		Str("profile", profileName).
		Str("preset", preset.Name).
		Str("group_merge", string(direction)).
		Msg("merging preset into profile")

	return Merge(cfg, preset, direction), nil
}
