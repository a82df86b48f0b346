// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotAMapping is returned when a document that must be a mapping
// (YAML mapping or JSON object) has a different shape.
var ErrNotAMapping = errors.New("document is not a mapping")

// OrderedMap is a string-keyed mapping that remembers insertion order.
//
// Configuration documents are edited by humans, so the order of their keys
// carries meaning for the reader even when it carries none for the proxy
// core. OrderedMap keeps that order across decode and encode.
//
// Nested mappings are stored as *OrderedMap, sequences as []any and scalars
// as the values produced by the YAML or JSON decoder.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap returns an empty *OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	if m.values == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. A new key goes to the end; an existing key
// keeps its position.
func (m *OrderedMap) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *OrderedMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (m *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d", ErrNotAMapping, node.Line)
	}

	m.keys = nil
	m.values = make(map[string]any, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("error decoding key at line %d: %w", node.Content[i].Line, err)
		}
		value, err := valueFromNode(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("error decoding %q: %w", key, err)
		}
		m.Set(key, value)
	}

	return nil
}

func valueFromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return valueFromNode(node.Alias)
	case yaml.MappingNode:
		nested := NewOrderedMap()
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := valueFromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	default:
		var scalar any
		if err := node.Decode(&scalar); err != nil {
			return nil, err
		}
		return scalar, nil
	}
}

// MarshalYAML implements [yaml.Marshaler].
func (m *OrderedMap) MarshalYAML() (any, error) {
	return m.toNode()
}

func (m *OrderedMap) toNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := new(yaml.Node)
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode, err := nodeFromValue(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("error encoding %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

func nodeFromValue(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *OrderedMap:
		return v.toNode()
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			child, err := nodeFromValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
	default:
		node := new(yaml.Node)
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers are kept as
// [json.Number] so integers survive a round trip unchanged.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotAMapping
	}

	return m.decodeObject(dec)
}

// decodeObject reads the object body after its opening brace.
func (m *OrderedMap) decodeObject(dec *json.Decoder) error {
	m.keys = nil
	m.values = make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return fmt.Errorf("error decoding %q: %w", key, err)
		}
		m.Set(key, value)
	}

	// closing brace
	_, err := dec.Token()
	return err
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		nested := NewOrderedMap()
		if err := nested.decodeObject(dec); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		items := make([]any, 0)
		for dec.More() {
			item, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// MarshalJSON implements [json.Marshaler].
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, m.values[key]); err != nil {
			return nil, fmt.Errorf("error encoding %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON appends v without HTML escaping; rule strings routinely carry
// characters such as '&' and '<'.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
