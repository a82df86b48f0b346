// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMergeDirection is returned when a merge direction string is
// neither "append" nor "prepend".
var ErrUnknownMergeDirection = errors.New("unknown merge direction")

// MergeDirection decides where preset proxy groups go relative to the groups
// already present in a document.
type MergeDirection string

const (
	// MergeAppend places preset groups after the existing ones.
	MergeAppend MergeDirection = "append"
	// MergePrepend places preset groups first, ahead of auto-generated ones.
	MergePrepend MergeDirection = "prepend"
)

// ParseMergeDirection parses s case-insensitively.
func ParseMergeDirection(s string) (MergeDirection, error) {
	switch d := MergeDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case MergeAppend, MergePrepend:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMergeDirection, s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler], so a MergeDirection can
// be read directly from env variables, YAML and JSON.
func (d *MergeDirection) UnmarshalText(text []byte) error {
	parsed, err := ParseMergeDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Preset is a named bundle of fixed proxy groups and rules that the augmenter
// merges into a document.
type Preset struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	GroupMerge  MergeDirection `yaml:"group-merge" json:"group_merge"`
	Groups      []ProxyGroup   `yaml:"groups" json:"groups"`
	Rules       []string       `yaml:"rules" json:"rules"`
}

// Clone returns a deep copy of p.
func (p Preset) Clone() Preset {
	clone := p
	if p.Groups != nil {
		clone.Groups = make([]ProxyGroup, len(p.Groups))
		for i, g := range p.Groups {
			clone.Groups[i] = g.Clone()
		}
	}
	if p.Rules != nil {
		clone.Rules = append([]string(nil), p.Rules...)
	}
	return clone
}

// PresetSummary is the short form of a preset used in listings.
type PresetSummary struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	GroupMerge  MergeDirection `json:"group_merge"`
	GroupCount  int            `json:"group_count"`
	RuleCount   int            `json:"rule_count"`
}

// Summary returns the listing form of p.
func (p Preset) Summary() PresetSummary {
	return PresetSummary{
		Name:        p.Name,
		Description: p.Description,
		GroupMerge:  p.GroupMerge,
		GroupCount:  len(p.Groups),
		RuleCount:   len(p.Rules),
	}
}
