package jsonmodels

import (
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Fragment is an insertion-ordered string-keyed mapping holding one field's
// (or one document's) JSON Schema representation. Validators mutate it
// additively through Set; later writers win on key collisions.
//
// A Fragment is not safe for concurrent mutation; callers building schemas
// from multiple goroutines must serialize access externally.
type Fragment struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewFragment returns an empty fragment.
func NewFragment() *Fragment {
	return &Fragment{m: orderedmap.New[string, any]()}
}

// Set stores value under key, preserving the position of an existing key.
func (f *Fragment) Set(key string, value any) {
	f.m.Set(key, value)
}

// Get returns the value stored under key.
func (f *Fragment) Get(key string) (any, bool) {
	return f.m.Get(key)
}

// Len returns the number of keys.
func (f *Fragment) Len() int {
	return f.m.Len()
}

// Keys returns the keys in insertion order.
func (f *Fragment) Keys() []string {
	keys := make([]string, 0, f.m.Len())
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON renders the fragment as a JSON object with keys in insertion
// order.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	return f.m.MarshalJSON()
}

// EncodeJSON renders the fragment as a compact JSON document.
func (f *Fragment) EncodeJSON() ([]byte, error) {
	return json.Marshal(f)
}

// EncodeJSONIndent renders the fragment as an indented JSON document.
func (f *Fragment) EncodeJSONIndent(prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(f, prefix, indent)
}

// MarshalYAML renders the fragment as a YAML mapping with keys in insertion
// order.
func (f *Fragment) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(pair.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
