// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/clash-augmenter/models"

// Merge writes preset into cfg and returns cfg.
//
// Proxy groups: the preset groups go after the existing ones for
// [models.MergeAppend] and before them for [models.MergePrepend]. Rules: the
// preset rules always go first, since the proxy core stops at the first
// matching rule. Absent "proxy-groups" and "rules" count as empty; a single
// scalar or mapping in their place is kept as the only existing entry. No
// other key is touched.
//
// Merge is not idempotent: merging the same preset twice duplicates its
// groups and rules.
func Merge(cfg *models.ClashConfig, preset models.Preset, direction models.MergeDirection) *models.ClashConfig {
	presetGroups := make([]any, 0, len(preset.Groups))
	for _, g := range preset.Groups {
		presetGroups = append(presetGroups, g.ToOrderedMap())
	}

	existingGroups := cfg.ProxyGroups()
	if direction == models.MergePrepend {
		cfg.SetProxyGroups(concat(presetGroups, existingGroups))
	} else {
		cfg.SetProxyGroups(concat(existingGroups, presetGroups))
	}

	presetRules := make([]any, 0, len(preset.Rules))
	for _, r := range preset.Rules {
		presetRules = append(presetRules, r)
	}
	cfg.SetRules(concat(presetRules, cfg.Rules()))

	return cfg
}

// concat returns a new slice holding first followed by second.
func concat(first, second []any) []any {
	out := make([]any, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}
