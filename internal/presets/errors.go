// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import "errors"

var (
	// ErrUnknownPreset is returned by [Registry.Lookup] for a name that was
	// never registered.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidPreset is returned when a preset fails validation.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrReadingPresetFile is returned when a preset file cannot be read or
	// decoded.
	ErrReadingPresetFile = errors.New("error reading preset file")
)
