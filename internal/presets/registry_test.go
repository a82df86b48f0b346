// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writePresetFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validPreset(name string) models.Preset {
	return models.Preset{
		Name:       name,
		GroupMerge: models.MergeAppend,
		Groups:     []models.ProxyGroup{{Name: "G", Type: models.GroupSelect, Proxies: []string{"DIRECT"}}},
		Rules:      []string{"DOMAIN,example.com,G"},
	}
}

// ── Builtin / Default ─────────────────────────────────────────────────────────

func TestBuiltin_RegionalMatchesReferenceData(t *testing.T) {
	r := Default()

	p, err := r.Lookup(Regional)
	require.NoError(t, err)

	assert.Equal(t, models.MergeAppend, p.GroupMerge)
	require.Len(t, p.Groups, 2)
	assert.Equal(t, "🌍特定地区", p.Groups[0].Name)
	assert.Len(t, p.Groups[0].Proxies, 8)
	assert.Equal(t, "🐟漏网之鱼", p.Groups[1].Name)
	assert.Len(t, p.Groups[1].Proxies, 10)

	require.Len(t, p.Rules, 23)
	assert.Equal(t, "DOMAIN-KEYWORD,tiktokcdn-,🌍特定地区", p.Rules[0])
	assert.Equal(t, "PROCESS-NAME,抖音 Helper,DIRECT", p.Rules[10])
	assert.Equal(t, "DOMAIN-KEYWORD,jav,🐟漏网之鱼", p.Rules[18])
	assert.Equal(t, "DOMAIN-KEYWORD,chatgpt,🌍特定地区", p.Rules[22])
}

func TestBuiltin_PriorityVariantOnlyDiffersInDirection(t *testing.T) {
	r := Default()

	regional, err := r.Lookup(Regional)
	require.NoError(t, err)
	priority, err := r.Lookup(RegionalPriority)
	require.NoError(t, err)

	assert.Equal(t, models.MergePrepend, priority.GroupMerge)
	assert.Equal(t, regional.Groups, priority.Groups)
	assert.Equal(t, regional.Rules, priority.Rules)
}

func TestBuiltin_ReturnsIndependentCopies(t *testing.T) {
	first := Builtin()
	first[0].Rules[0] = "mutated"
	first[0].Groups[0].Proxies[0] = "mutated"

	second := Builtin()
	assert.NotEqual(t, "mutated", second[0].Rules[0])
	assert.NotEqual(t, "mutated", second[0].Groups[0].Proxies[0])
}

// ── Registry ──────────────────────────────────────────────────────────────────

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := Default().Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r := Default()

	p, err := r.Lookup(Regional)
	require.NoError(t, err)
	p.Rules[0] = "mutated"

	again, err := r.Lookup(Regional)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Rules[0])
}

func TestRegistry_NamesAreSorted(t *testing.T) {
	r, err := NewRegistry(validPreset("zeta"), validPreset("alpha"), validPreset("mid"))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestRegistry_LaterPresetWins(t *testing.T) {
	first := validPreset("same")
	second := validPreset("same")
	second.GroupMerge = models.MergePrepend

	r, err := NewRegistry(first, second)
	require.NoError(t, err)

	p, err := r.Lookup("same")
	require.NoError(t, err)
	assert.Equal(t, models.MergePrepend, p.GroupMerge)
}

func TestRegistry_RejectsInvalidPreset(t *testing.T) {
	bad := validPreset("bad")
	bad.Rules = []string{"NOT-A-RULE"}

	r, err := NewRegistry(validPreset("ok"), bad)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestRegistry_Summaries(t *testing.T) {
	summaries := Default().Summaries()

	require.Len(t, summaries, 2)
	assert.Equal(t, Regional, summaries[0].Name)
	assert.Equal(t, 2, summaries[0].GroupCount)
	assert.Equal(t, 23, summaries[0].RuleCount)
	assert.Equal(t, RegionalPriority, summaries[1].Name)
	assert.Equal(t, models.MergePrepend, summaries[1].GroupMerge)
}

// ── files ─────────────────────────────────────────────────────────────────────

const presetYAML = `
presets:
  - name: streaming
    description: streaming services first
    group-merge: prepend
    groups:
      - name: 🎬流媒体
        type: select
        proxies: [🇯🇵 日本IEPL-原生, DIRECT]
    rules:
      - DOMAIN-SUFFIX,netflix.com,🎬流媒体
  - name: regional
    group-merge: append
    groups:
      - name: only
        type: select
        proxies: [DIRECT]
    rules: []
`

func TestNewRegistryFromFile_YAML(t *testing.T) {
	path := writePresetFile(t, "presets.yaml", presetYAML)

	r, err := NewRegistryFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{Regional, RegionalPriority, "streaming"}, r.Names())

	streaming, err := r.Lookup("streaming")
	require.NoError(t, err)
	assert.Equal(t, models.MergePrepend, streaming.GroupMerge)
	assert.Equal(t, []string{"DOMAIN-SUFFIX,netflix.com,🎬流媒体"}, streaming.Rules)

	// the file overrides the builtin preset of the same name
	regional, err := r.Lookup(Regional)
	require.NoError(t, err)
	require.Len(t, regional.Groups, 1)
	assert.Equal(t, "only", regional.Groups[0].Name)
}

func TestNewRegistryFromFile_JSONC(t *testing.T) {
	path := writePresetFile(t, "presets.jsonc", `{
  // one preset
  "presets": [
    {
      "name": "work",
      "group_merge": "append",
      "groups": [{"name": "office", "type": "select", "proxies": ["DIRECT"]}],
      "rules": ["DOMAIN-SUFFIX,corp.example,office",],
    },
  ],
}`)

	r, err := NewRegistryFromFile(path)
	require.NoError(t, err)

	p, err := r.Lookup("work")
	require.NoError(t, err)
	assert.Equal(t, "office", p.Groups[0].Name)
}

func TestNewRegistryFromFile_EmptyPathIsDefault(t *testing.T) {
	r, err := NewRegistryFromFile("")
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), r.Names())
}

func TestNewRegistryFromFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewRegistryFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, ErrReadingPresetFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writePresetFile(t, "bad.yaml", "presets: [")
		_, err := NewRegistryFromFile(path)
		assert.ErrorIs(t, err, ErrReadingPresetFile)
	})

	t.Run("bad merge direction", func(t *testing.T) {
		path := writePresetFile(t, "bad.yaml", "presets:\n  - name: x\n    group-merge: sideways\n")
		_, err := NewRegistryFromFile(path)
		assert.ErrorIs(t, err, ErrReadingPresetFile)
	})

	t.Run("invalid preset", func(t *testing.T) {
		path := writePresetFile(t, "bad.yaml", "presets:\n  - name: x\n    group-merge: append\n    groups:\n      - name: g\n        type: magic\n        proxies: [DIRECT]\n")
		_, err := NewRegistryFromFile(path)
		assert.ErrorIs(t, err, ErrInvalidPreset)
	})
}

func TestParse_FormatMismatch(t *testing.T) {
	_, err := Parse([]byte("presets: []"), codec.FormatJSON)
	assert.ErrorIs(t, err, ErrReadingPresetFile)
}
