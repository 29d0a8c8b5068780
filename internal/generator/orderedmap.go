package generator

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed mapping that serializes entries in the order
// they are held. Plain Go maps are emitted in raw byte order by both the
// JSON and YAML encoders, which would break the case-insensitive key
// ordering the final document guarantees.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap allocates an empty map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: map[string]any{}}
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// Keys returns the keys in their current order.
func (m *OrderedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, appending the key on first insertion.
func (m *OrderedMap) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Sort orders keys case-insensitively on their trimmed form. Keys that
// compare equal keep their insertion order.
func (m *OrderedMap) Sort() {
	sort.SliceStable(m.keys, func(i, j int) bool {
		return sortForm(m.keys[i]) < sortForm(m.keys[j])
	})
}

func sortForm(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// MarshalJSON emits the entries as a JSON object in held order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the entries as a YAML mapping in held order.
func (m *OrderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
