// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [ProfileStorage]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrReadingProfile is returned when the source file or stream cannot be
	// read.
	ErrReadingProfile = errors.New("error reading profile")

	// ErrWritingProfile is returned when the destination cannot be written or
	// the temporary file cannot be renamed into place.
	ErrWritingProfile = errors.New("error writing profile")
)
