// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/clash-augmenter/models"
)

// Validate checks that p can be merged into a document: it has a name, a
// valid merge direction, uniquely named groups of known types and rules of
// the form MATCHER,value,target.
func Validate(p models.Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}

	if _, err := models.ParseMergeDirection(string(p.GroupMerge)); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPreset, p.Name, err)
	}

	seen := make(map[string]struct{}, len(p.Groups))
	for i, g := range p.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("%w %q: group #%d has no name", ErrInvalidPreset, p.Name, i)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("%w %q: duplicate group %q", ErrInvalidPreset, p.Name, g.Name)
		}
		seen[g.Name] = struct{}{}

		if !g.Type.Valid() {
			return fmt.Errorf("%w %q: group %q has unknown type %q", ErrInvalidPreset, p.Name, g.Name, g.Type)
		}
		if len(g.Proxies) == 0 && len(g.Use) == 0 {
			return fmt.Errorf("%w %q: group %q has no members", ErrInvalidPreset, p.Name, g.Name)
		}
	}

	for i, rule := range p.Rules {
		if _, err := models.ParseRule(rule); err != nil {
			return fmt.Errorf("%w %q: rule #%d %q: %w", ErrInvalidPreset, p.Name, i, rule, err)
		}
	}

	return nil
}
