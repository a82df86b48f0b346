// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GroupType is the selection policy of a proxy group.
type GroupType string

const (
	GroupSelect      GroupType = "select"
	GroupURLTest     GroupType = "url-test"
	GroupFallback    GroupType = "fallback"
	GroupLoadBalance GroupType = "load-balance"
	GroupRelay       GroupType = "relay"
)

// allowedGroupTypes is the set of GroupType values accepted in presets.
var allowedGroupTypes = []GroupType{
	GroupSelect,
	GroupURLTest,
	GroupFallback,
	GroupLoadBalance,
	GroupRelay,
}

// Valid reports whether t is a known group type.
func (t GroupType) Valid() bool {
	for _, allowed := range allowedGroupTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// ProxyGroup is a named selector over proxies and other groups.
//
// Proxies holds proxy names, group names or built-in actions (DIRECT,
// REJECT); together the groups of a document form a reference graph which
// the augmenter does not resolve.
type ProxyGroup struct {
	Name    string    `yaml:"name" json:"name"`
	Type    GroupType `yaml:"type" json:"type"`
	Proxies []string  `yaml:"proxies,omitempty" json:"proxies,omitempty"`

	// Use lists proxy-provider names whose proxies join the group.
	Use []string `yaml:"use,omitempty" json:"use,omitempty"`

	// url-test / fallback / load-balance only
	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
	Interval  int    `yaml:"interval,omitempty" json:"interval,omitempty"`
	Tolerance int    `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

// Clone returns a deep copy of g.
func (g ProxyGroup) Clone() ProxyGroup {
	clone := g
	if g.Proxies != nil {
		clone.Proxies = append([]string(nil), g.Proxies...)
	}
	if g.Use != nil {
		clone.Use = append([]string(nil), g.Use...)
	}
	return clone
}

// ToOrderedMap renders g as a document entry with keys in the conventional
// order (name, type, proxies, use, url, interval, tolerance). Empty optional
// fields are left out.
func (g ProxyGroup) ToOrderedMap() *OrderedMap {
	m := NewOrderedMap()
	m.Set("name", g.Name)
	m.Set("type", string(g.Type))
	if len(g.Proxies) > 0 {
		m.Set("proxies", stringsToAny(g.Proxies))
	}
	if len(g.Use) > 0 {
		m.Set("use", stringsToAny(g.Use))
	}
	if g.URL != "" {
		m.Set("url", g.URL)
	}
	if g.Interval > 0 {
		m.Set("interval", g.Interval)
	}
	if g.Tolerance > 0 {
		m.Set("tolerance", g.Tolerance)
	}
	return m
}

func stringsToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
