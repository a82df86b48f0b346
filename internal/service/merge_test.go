// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func decodeConfig(t *testing.T, doc string) *models.ClashConfig {
	t.Helper()
	cfg := models.NewClashConfig()
	require.NoError(t, yaml.Unmarshal([]byte(doc), cfg))
	return cfg
}

func regionalPreset(t *testing.T) models.Preset {
	t.Helper()
	p, err := presets.Default().Lookup(presets.Regional)
	require.NoError(t, err)
	return p
}

func groupNames(t *testing.T, groups []any) []string {
	t.Helper()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		m, ok := g.(*models.OrderedMap)
		require.True(t, ok, "group entry must be a mapping")
		name, _ := m.Get("name")
		names = append(names, name.(string))
	}
	return names
}

func presetRules(p models.Preset) []any {
	out := make([]any, len(p.Rules))
	for i, r := range p.Rules {
		out[i] = r
	}
	return out
}

// ── Merge ─────────────────────────────────────────────────────────────────────

func TestMerge_SingleProxyScenario(t *testing.T) {
	preset := regionalPreset(t)
	cfg := decodeConfig(t, "proxies: [p1]\nrules: ['A,b,c']")

	got := Merge(cfg, preset, preset.GroupMerge)

	assert.Same(t, cfg, got)
	assert.Equal(t, append(presetRules(preset), "A,b,c"), got.Rules())
	assert.Equal(t, []string{"🌍特定地区", "🐟漏网之鱼"}, groupNames(t, got.ProxyGroups()))
}

func TestMerge_GroupDirections(t *testing.T) {
	const doc = `
proxies: [p1]
proxy-groups:
  - {name: auto, type: url-test, proxies: [p1], interval: 300}
  - {name: manual, type: select, proxies: [auto, p1]}
`
	tests := []struct {
		name      string
		direction models.MergeDirection
		want      []string
	}{
		{
			name:      "append",
			direction: models.MergeAppend,
			want:      []string{"auto", "manual", "🌍特定地区", "🐟漏网之鱼"},
		},
		{
			name:      "prepend",
			direction: models.MergePrepend,
			want:      []string{"🌍特定地区", "🐟漏网之鱼", "auto", "manual"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := decodeConfig(t, doc)
			original := cfg.ProxyGroups()

			Merge(cfg, regionalPreset(t), tt.direction)

			groups := cfg.ProxyGroups()
			assert.Equal(t, tt.want, groupNames(t, groups))

			// original entries are carried over untouched
			for _, g := range original {
				assert.Contains(t, groups, g)
			}
		})
	}
}

func TestMerge_RulesAlwaysPrepended(t *testing.T) {
	preset := regionalPreset(t)

	for _, direction := range []models.MergeDirection{models.MergeAppend, models.MergePrepend} {
		t.Run(string(direction), func(t *testing.T) {
			cfg := decodeConfig(t, "proxies: [p1]\nrules: ['DOMAIN-KEYWORD,google,DIRECT', 'MATCH,DIRECT']")

			Merge(cfg, preset, direction)

			rules := cfg.Rules()
			require.Len(t, rules, len(preset.Rules)+2)
			assert.Equal(t, presetRules(preset), rules[:len(preset.Rules)])
			assert.Equal(t, []any{"DOMAIN-KEYWORD,google,DIRECT", "MATCH,DIRECT"}, rules[len(preset.Rules):])
		})
	}
}

func TestMerge_AbsentSequencesBecomePresent(t *testing.T) {
	cfg := decodeConfig(t, "proxies: [p1]")

	Merge(cfg, models.Preset{Name: "empty", GroupMerge: models.MergeAppend}, models.MergeAppend)

	groups, ok := cfg.Get(models.KeyProxyGroups)
	require.True(t, ok)
	assert.Equal(t, []any{}, groups)

	rules, ok := cfg.Get(models.KeyRules)
	require.True(t, ok)
	assert.Equal(t, []any{}, rules)
}

func TestMerge_ScalarSequencesKept(t *testing.T) {
	cfg := decodeConfig(t, "proxies: [p1]\nproxy-groups: {name: Own, type: select}\nrules: 'MATCH,DIRECT'")

	Merge(cfg, regionalPreset(t), models.MergeAppend)

	groups := cfg.ProxyGroups()
	require.Len(t, groups, 3)
	own, ok := groups[0].(*models.OrderedMap)
	require.True(t, ok)
	name, _ := own.Get("name")
	assert.Equal(t, "Own", name)

	rules := cfg.Rules()
	require.Len(t, rules, 24)
	assert.Equal(t, "MATCH,DIRECT", rules[23])
}

func TestMerge_NullSequencesTreatedAsEmpty(t *testing.T) {
	cfg := decodeConfig(t, "proxies: [p1]\nproxy-groups:\nrules: ~")

	Merge(cfg, regionalPreset(t), models.MergeAppend)

	assert.Len(t, cfg.ProxyGroups(), 2)
	assert.Len(t, cfg.Rules(), 23)
}

func TestMerge_OtherKeysUntouched(t *testing.T) {
	const doc = `
mixed-port: 7890
mode: rule
proxies: [{name: p1, type: ss}]
dns: {enable: true, nameserver: [223.5.5.5]}
rules: ['MATCH,DIRECT']
`
	cfg := decodeConfig(t, doc)
	reference := decodeConfig(t, doc)

	Merge(cfg, regionalPreset(t), models.MergeAppend)

	assert.Equal(t, []string{"mixed-port", "mode", "proxies", "dns", "rules", "proxy-groups"}, cfg.Keys())
	for _, key := range []string{"mixed-port", "mode", "proxies", "dns"} {
		want, _ := reference.Get(key)
		got, _ := cfg.Get(key)
		assert.Equal(t, want, got, key)
	}
}

func TestMerge_IsNotIdempotent(t *testing.T) {
	preset := regionalPreset(t)
	cfg := decodeConfig(t, "proxies: [p1]\nrules: ['A,b,c']")

	Merge(cfg, preset, models.MergeAppend)
	Merge(cfg, preset, models.MergeAppend)

	assert.Len(t, cfg.ProxyGroups(), 4)
	assert.Len(t, cfg.Rules(), 2*len(preset.Rules)+1)
}

func TestMerge_DoesNotAliasPreset(t *testing.T) {
	preset := regionalPreset(t)
	cfg := decodeConfig(t, "proxies: [p1]")

	Merge(cfg, preset, models.MergeAppend)
	cfg.Rules()[0] = "mutated"

	assert.NotEqual(t, "mutated", preset.Rules[0])
}
