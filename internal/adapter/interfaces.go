// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the augment server HTTP API.
//
// The primary abstraction is [AugmentAdapter], which decouples the service
// layer from the protocol. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// regardless of transport (e.g. [ErrUnprocessableEntity] for 422,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/augment_adapter_mock.go -package=mock

// AugmentParams carries the query parameters of a remote augment call. Empty
// fields are omitted and fall back to the server's defaults.
type AugmentParams struct {
	Profile    string
	Preset     string
	GroupMerge models.MergeDirection
}

// AugmentAdapter defines communication with a remote augment server.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type AugmentAdapter interface {
	// Augment sends cfg to POST /api/augment and returns the augmented
	// document decoded from the response.
	Augment(ctx context.Context, cfg *models.ClashConfig, params AugmentParams) (*models.ClashConfig, error)

	// ListPresets fetches the preset summaries served by GET /api/presets.
	ListPresets(ctx context.Context) ([]models.PresetSummary, error)

	// GetPreset fetches a single preset from GET /api/presets/{name}.
	GetPreset(ctx context.Context, name string) (models.Preset, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
