// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presets holds the named tables of proxy groups and rules that the
// augmenter merges into configuration documents.
//
// The tables are data, not code: the merge algorithm in package service
// takes a [models.Preset] and never looks at preset contents. Builtin
// presets are compiled in; more can be loaded from YAML or JSON files and
// override builtin ones by name.
package presets
