// Package models assembles declared fields into named models: value
// assignment with validation, required-field bookkeeping, population from
// decoded or raw JSON, and derivation of the full JSON Schema document.
package models

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/AntonioAngelino/jsonmodels"
	"github.com/AntonioAngelino/jsonmodels/fields"
)

// Model is a named collection of declared fields plus their current values.
// Declaration order is preserved and drives both validation order and the
// order of keys in the generated schema.
type Model struct {
	name   string
	order  []string
	fields map[string]*fields.Field
	values map[string]any
}

// New starts a model declaration.
func New(name string) *Model {
	return &Model{
		name:   name,
		fields: map[string]*fields.Field{},
		values: map[string]any{},
	}
}

// Field declares a field. Redeclaring a name replaces the field in place.
func (m *Model) Field(name string, f *fields.Field) *Model {
	if _, exists := m.fields[name]; !exists {
		m.order = append(m.order, name)
	}
	m.fields[name] = f
	return m
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// FieldNames returns the declared field names in declaration order.
func (m *Model) FieldNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Fields returns the declared field for name.
func (m *Model) Fields(name string) (*fields.Field, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// Set assigns a value to a field, validating it first: the field's type check
// runs, then its validators in declaration order, stopping at the first
// failure. Assigning nil clears the field.
func (m *Model) Set(name string, value any) error {
	f, ok := m.fields[name]
	if !ok {
		return fmt.Errorf("models: %s has no field %q", m.name, name)
	}
	if value == nil {
		delete(m.values, name)
		return nil
	}
	if err := f.Validate(value); err != nil {
		return err
	}
	m.values[name] = value
	return nil
}

// Get returns the current value of a field.
func (m *Model) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Populate assigns the known keys of data in declaration order; unknown keys
// are ignored. The first failing assignment aborts.
func (m *Model) Populate(data map[string]any) error {
	for _, name := range m.order {
		if v, ok := data[name]; ok {
			if err := m.Set(name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// PopulateJSON decodes a JSON object and populates the model from it. Numbers
// decode as json.Number so integer fields keep their precision.
func (m *Model) PopulateJSON(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return err
	}
	return m.Populate(data)
}

// Validate checks required-field bookkeeping and re-validates every assigned
// value, in declaration order, stopping at the first failure.
func (m *Model) Validate() error {
	for _, name := range m.order {
		f := m.fields[name]
		v, ok := m.values[name]
		if !ok {
			if f.IsRequired() {
				return m.requiredError(name)
			}
			continue
		}
		if err := f.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// ValidateValue implements fields.ModelRef: it validates a decoded object
// (map of field values) against this model's declaration without touching the
// model's own values.
func (m *Model) ValidateValue(v any) error {
	data, ok := v.(map[string]any)
	if !ok {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeInvalidType,
			fmt.Sprintf("expected object for model %s, got %T", m.name, v),
			map[string]any{"model": m.name, "type": fmt.Sprintf("%T", v)},
		)
	}
	for _, name := range m.order {
		f := m.fields[name]
		val, present := data[name]
		if !present || val == nil {
			if f.IsRequired() {
				return m.requiredError(name)
			}
			continue
		}
		if err := f.Validate(val); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) requiredError(name string) error {
	return jsonmodels.NewValidationError(
		jsonmodels.CodeRequired,
		fmt.Sprintf("field %q of model %s is required", name, m.name),
		map[string]any{"field": name, "model": m.name},
	)
}

// DescribeSchema implements fields.ModelRef: it writes the model's object
// schema into frag, recursing into embedded and list models and merging the
// required array from the fields' declarations.
func (m *Model) DescribeSchema(frag *jsonmodels.Fragment) {
	frag.Set("type", "object")
	frag.Set("additionalProperties", false)
	props := jsonmodels.NewFragment()
	var required []string
	for _, name := range m.order {
		f := m.fields[name]
		sub := jsonmodels.NewFragment()
		f.DescribeSchema(sub)
		props.Set(name, sub)
		if f.IsRequired() {
			required = append(required, name)
		}
	}
	frag.Set("properties", props)
	if len(required) > 0 {
		frag.Set("required", required)
	}
}

// ToJSONSchema derives the model's JSON Schema document.
func (m *Model) ToJSONSchema() *jsonmodels.Fragment {
	frag := jsonmodels.NewFragment()
	m.DescribeSchema(frag)
	return frag
}
