package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/models"
)

type clientAugmentService struct {
	adapter  adapter.AugmentAdapter
	defaults augmentOptions

	logger *logger.Logger
}

// NewClientAugmentService returns an [AugmentService] that sends documents to
// a remote server. The configured preset and group merge are sent with every
// request that does not override them; the server applies its own defaults
// only for values left empty here. A malformed group merge is an error.
func NewClientAugmentService(serverAdapter adapter.AugmentAdapter, cfg config.App, logger *logger.Logger) (AugmentService, error) {
	defaults := augmentOptions{preset: cfg.Preset}
	if cfg.GroupMerge != "" {
		direction, err := models.ParseMergeDirection(cfg.GroupMerge)
		if err != nil {
			return nil, fmt.Errorf("default group merge: %w", err)
		}
		defaults.groupMerge = direction
	}

	return &clientAugmentService{
		adapter:  serverAdapter,
		defaults: defaults,
		logger:   logger,
	}, nil
}

// Augment replaces the contents of cfg with the server's answer, so callers
// observe the same in-place mutation as with the local service.
func (c *clientAugmentService) Augment(ctx context.Context, cfg *models.ClashConfig, profileName string, opts ...AugmentOption) (*models.ClashConfig, error) {
	o := resolveOptions(c.defaults, opts)

	c.logger.Debug().
		Str("profile", profileName).
		Str("preset", o.preset).
		Str("group_merge", string(o.groupMerge)).
		Msg("sending profile to augment server")

	augmented, err := c.adapter.Augment(ctx, cfg, adapter.AugmentParams{
		Profile:    profileName,
		Preset:     o.preset,
		GroupMerge: o.groupMerge,
	})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	*cfg = *augmented
	return cfg, nil
}
