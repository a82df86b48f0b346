// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec reads and writes proxy-routing configuration documents.
//
// Two formats are supported: YAML, the native format of Clash/mihomo
// subscriptions, and JSON. JSON input may carry comments and trailing
// commas. Both decoders keep the key order of the source document so an
// augmented document differs from its input only where the augmenter
// changed it.
package codec
