// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line augmenter runtime.
//
// It reads a profile through the store, runs it through the service layer
// (local or remote) and delivers the result to a file, stdout or the system
// clipboard.
package client
