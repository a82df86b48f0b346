// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/clash-augmenter/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Empty values are
// accepted; only values that are set and malformed are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.GroupMerge != "" {
		if _, err := models.ParseMergeDirection(cfg.App.GroupMerge); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.MaxBodyBytes < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	switch strings.ToLower(cfg.IO.Format) {
	case "", "yaml", "yml", "json", "jsonc":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidIOConfigs, cfg.IO.Format)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
