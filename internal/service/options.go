// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/clash-augmenter/models"

// augmentOptions carries per-call overrides of the service defaults.
type augmentOptions struct {
	preset     string
	groupMerge models.MergeDirection
}

// AugmentOption customises a single Augment call.
type AugmentOption func(*augmentOptions)

// WithPreset selects the preset by name instead of the configured default.
// An empty name keeps the default.
func WithPreset(name string) AugmentOption {
	return func(o *augmentOptions) {
		if name != "" {
			o.preset = name
		}
	}
}

// WithGroupMerge overrides the preset's group merge direction. An empty
// direction keeps the preset's own.
func WithGroupMerge(direction models.MergeDirection) AugmentOption {
	return func(o *augmentOptions) {
		if direction != "" {
			o.groupMerge = direction
		}
	}
}

func resolveOptions(defaults augmentOptions, opts []AugmentOption) augmentOptions {
	resolved := defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}
