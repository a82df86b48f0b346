// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import (
	"fmt"
	"os"
	"sort"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/models"
)

// Registry is a read-only set of validated presets keyed by name.
//
// A Registry is safe for concurrent use: it is never modified after
// construction and Lookup hands out deep copies.
type Registry struct {
	presets map[string]models.Preset
}

// NewRegistry validates presets and indexes them by name. A later preset
// replaces an earlier one with the same name.
func NewRegistry(presets ...models.Preset) (*Registry, error) {
	r := &Registry{presets: make(map[string]models.Preset, len(presets))}
	for _, p := range presets {
		if err := Validate(p); err != nil {
			return nil, err
		}
		r.presets[p.Name] = p.Clone()
	}
	return r, nil
}

// Default returns a Registry holding only the builtin presets.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("builtin presets are invalid: %v", err))
	}
	return r
}

// Lookup returns a copy of the preset registered under name.
func (r *Registry) Lookup(name string) (models.Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return models.Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Clone(), nil
}

// Names returns the registered preset names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summaries returns the listing form of every preset, ordered by name.
func (r *Registry) Summaries() []models.PresetSummary {
	names := r.Names()
	summaries := make([]models.PresetSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, r.presets[name].Summary())
	}
	return summaries
}

// presetFile is the on-disk layout of a preset file.
type presetFile struct {
	Presets []models.Preset `yaml:"presets" json:"presets"`
}

// Parse decodes the presets listed in a preset file.
func Parse(data []byte, format codec.Format) ([]models.Preset, error) {
	var file presetFile
	if err := codec.Unmarshal(data, format, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingPresetFile, err)
	}
	return file.Presets, nil
}

// LoadFile reads a preset file; the format follows the file extension.
func LoadFile(path string) ([]models.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingPresetFile, path, err)
	}
	return Parse(data, codec.FormatFromPath(path))
}

// NewRegistryFromFile returns the builtin presets extended, or overridden by
// name, with the presets of the file at path. An empty path yields
// [Default].
func NewRegistryFromFile(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return NewRegistry(append(Builtin(), extra...)...)
}
