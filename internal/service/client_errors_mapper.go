// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/app"
	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/internal/validators"
	"github.com/MKhiriev/clash-augmenter/models"
)

// mapAdapterError translates the adapter's transport error back into the
// sentinel the server started from. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDocument:
			return fmt.Errorf("%w: %w", codec.ErrInvalidDocument, err)
		case app.MsgUnsupportedFormat:
			return fmt.Errorf("%w: %w", codec.ErrUnknownFormat, err)
		case app.MsgInvalidMergeDirection:
			return fmt.Errorf("%w: %w", models.ErrUnknownMergeDirection, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownPreset {
			return fmt.Errorf("%w: %w", presets.ErrUnknownPreset, err)
		}

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		if msg == app.MsgNoProxiesFound {
			return fmt.Errorf("%w: %w", validators.ErrNoProxiesFound, err)
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
