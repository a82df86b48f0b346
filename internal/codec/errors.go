// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrInvalidDocument is returned when the input is empty, cannot be
	// parsed, or its top level is not a mapping.
	ErrInvalidDocument = errors.New("invalid configuration document")

	// ErrUnknownFormat is returned for a format name other than yaml or json.
	ErrUnknownFormat = errors.New("unknown document format")
)
