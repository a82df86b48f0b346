// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/models"
)

// DiagnosticHook observes every successfully augmented document. Hooks must
// not modify cfg.
type DiagnosticHook func(ctx context.Context, profileName string, cfg *models.ClashConfig)

// LogDiagnostics is the default [DiagnosticHook]. It writes one debug record
// with the profile name, the resulting group and rule counts and the
// document itself to the logger carried by ctx.
func LogDiagnostics(ctx context.Context, profileName string, cfg *models.ClashConfig) {
	logger.FromContext(ctx).Debug().
		Str("profile", profileName).
		Int("proxy_groups", len(cfg.ProxyGroups())).
		Int("rules", len(cfg.Rules())).
		Any("config", cfg).
		Msg("processed profile")
}

type AugmentDiagnosticsService struct {
	inner AugmentService
	hooks []DiagnosticHook
}

// NewAugmentDiagnosticsService returns a wrapper that calls hooks, in
// order, after the wrapped service succeeds. With no hooks it is a
// pass-through.
func NewAugmentDiagnosticsService(hooks ...DiagnosticHook) AugmentServiceWrapper {
	return &AugmentDiagnosticsService{hooks: hooks}
}

func (d *AugmentDiagnosticsService) Augment(ctx context.Context, cfg *models.ClashConfig, profileName string, opts ...AugmentOption) (*models.ClashConfig, error) {
	result, err := d.inner.Augment(ctx, cfg, profileName, opts...)
	if err != nil {
		return nil, err
	}

	for _, hook := range d.hooks {
		if hook != nil {
			hook(ctx, profileName, result)
		}
	}

	return result, nil
}

func (d *AugmentDiagnosticsService) Wrap(inner AugmentService) AugmentService {
	d.inner = inner
	return d
}
