// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Top-level keys of a proxy-routing configuration document that the
// augmenter reads or writes. Every other key is carried through untouched.
const (
	KeyProxies        = "proxies"
	KeyProxyProviders = "proxy-providers"
	KeyProxyGroups    = "proxy-groups"
	KeyRules          = "rules"
)

// ClashConfig is a Clash/mihomo proxy-routing configuration document.
//
// It embeds [OrderedMap], so unknown keys and their order survive a
// decode/encode round trip. The typed accessors below treat a missing key or
// a value of the wrong shape as empty.
type ClashConfig struct {
	OrderedMap
}

// NewClashConfig returns an empty *ClashConfig.
func NewClashConfig() *ClashConfig {
	return &ClashConfig{OrderedMap: *NewOrderedMap()}
}

// ProxyCount returns the length of the "proxies" sequence, or 0 when the key
// is absent or not a sequence.
func (c *ClashConfig) ProxyCount() int {
	return len(c.sequence(KeyProxies))
}

// ProxyProviderCount returns the number of keys of the "proxy-providers"
// mapping, or 0 when the key is absent or not a mapping.
func (c *ClashConfig) ProxyProviderCount() int {
	v, ok := c.Get(KeyProxyProviders)
	if !ok {
		return 0
	}
	providers, ok := v.(*OrderedMap)
	if !ok || providers == nil {
		return 0
	}
	return providers.Len()
}

// ProxyGroups returns the "proxy-groups" sequence. Entries are opaque. A
// single non-sequence value is returned as a one-element sequence.
func (c *ClashConfig) ProxyGroups() []any {
	return c.sequenceOrScalar(KeyProxyGroups)
}

// SetProxyGroups replaces the "proxy-groups" sequence. A nil slice is stored
// as an empty sequence.
func (c *ClashConfig) SetProxyGroups(groups []any) {
	if groups == nil {
		groups = []any{}
	}
	c.Set(KeyProxyGroups, groups)
}

// Rules returns the "rules" sequence. A single rule written as a scalar is
// returned as a one-element sequence.
func (c *ClashConfig) Rules() []any {
	return c.sequenceOrScalar(KeyRules)
}

// SetRules replaces the "rules" sequence. A nil slice is stored as an empty
// sequence.
func (c *ClashConfig) SetRules(rules []any) {
	if rules == nil {
		rules = []any{}
	}
	c.Set(KeyRules, rules)
}

func (c *ClashConfig) sequence(key string) []any {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	seq, _ := v.([]any)
	return seq
}

func (c *ClashConfig) sequenceOrScalar(key string) []any {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return nil
	}
	if seq, ok := v.([]any); ok {
		return seq
	}
	return []any{v}
}
