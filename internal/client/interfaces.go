// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run processes one document and returns when it is delivered.
	Run(ctx context.Context) error
}

// Clipboard receives the encoded document when clipboard output is on.
type Clipboard interface {
	WriteAll(text string) error
}
