// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrBodyTooLarge is returned when a request body exceeds the handler's
// size limit.
var ErrBodyTooLarge = errors.New("request body too large")
