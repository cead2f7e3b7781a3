package fields

import (
	"fmt"

	"github.com/AntonioAngelino/jsonmodels"
)

// ModelRef is the surface fields need from a nested model: recursive
// validation of nested values and contribution of the nested object schema.
// models.Model implements it.
type ModelRef interface {
	Name() string
	ValidateValue(v any) error
	DescribeSchema(f *jsonmodels.Fragment)
}

type kind int

const (
	kindString kind = iota
	kindInt
	kindFloat
	kindBool
	kindTime
	kindDate
	kindDateTime
	kindList
	kindEmbedded
)

// Field is one declared attribute of a model. Zero or more validators run
// against every assigned value in declaration order; the first failure aborts
// validation of the field.
type Field struct {
	kind       kind
	required   bool
	nullable   bool
	validators []jsonmodels.Validator
	refs       []ModelRef
}

// Required marks the field as mandatory during model validation.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

// Nullable renders the schema type as a [type, "null"] union.
func (f *Field) Nullable() *Field {
	f.nullable = true
	return f
}

// With appends validators, preserving declaration order across calls.
func (f *Field) With(validators ...jsonmodels.Validator) *Field {
	f.validators = append(f.validators, validators...)
	return f
}

// IsRequired reports whether the field was marked required.
func (f *Field) IsRequired() bool { return f.required }

// Validators returns the declared validators in order.
func (f *Field) Validators() []jsonmodels.Validator { return f.validators }

// Validate type-checks value against the field kind, then runs the declared
// validators in order, returning the first failure.
func (f *Field) Validate(value any) error {
	if err := f.checkType(value); err != nil {
		return err
	}
	for _, v := range f.validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// DescribeSchema writes the field's JSON Schema fragment: the base type (and
// format where applicable) followed by each validator's contribution in
// declaration order. Mutations accumulate; later writers win on collisions.
func (f *Field) DescribeSchema(frag *jsonmodels.Fragment) {
	f.describeBase(frag)
	for _, v := range f.validators {
		if sm, ok := v.(jsonmodels.SchemaModifier); ok {
			sm.ModifySchema(frag)
		}
	}
}

func (f *Field) describeBase(frag *jsonmodels.Fragment) {
	switch f.kind {
	case kindList:
		f.setType(frag, "array")
		frag.Set("items", f.itemsSchema())
	case kindEmbedded:
		if len(f.refs) == 1 {
			f.refs[0].DescribeSchema(frag)
			return
		}
		frag.Set("oneOf", refSchemas(f.refs))
	default:
		f.setType(frag, f.typeName())
		if format := f.formatName(); format != "" {
			frag.Set("format", format)
		}
	}
}

func (f *Field) setType(frag *jsonmodels.Fragment, name string) {
	if f.nullable {
		frag.Set("type", []any{name, "null"})
		return
	}
	frag.Set("type", name)
}

func (f *Field) itemsSchema() *jsonmodels.Fragment {
	if len(f.refs) == 1 {
		sub := jsonmodels.NewFragment()
		f.refs[0].DescribeSchema(sub)
		return sub
	}
	sub := jsonmodels.NewFragment()
	sub.Set("oneOf", refSchemas(f.refs))
	return sub
}

func refSchemas(refs []ModelRef) []any {
	out := make([]any, len(refs))
	for i, ref := range refs {
		sub := jsonmodels.NewFragment()
		ref.DescribeSchema(sub)
		out[i] = sub
	}
	return out
}

func (f *Field) typeName() string {
	switch f.kind {
	case kindString:
		return "string"
	case kindInt:
		return "integer"
	case kindFloat:
		return "number"
	case kindBool:
		return "boolean"
	case kindTime, kindDate, kindDateTime:
		return "string"
	}
	return "object"
}

func (f *Field) formatName() string {
	switch f.kind {
	case kindTime:
		return "time"
	case kindDate:
		return "date"
	case kindDateTime:
		return "date-time"
	}
	return ""
}

func (f *Field) invalidType(value any) error {
	return jsonmodels.NewValidationError(
		jsonmodels.CodeInvalidType,
		fmt.Sprintf("field of type %s does not accept %T value '%v'", f.typeName(), value, value),
		map[string]any{"expected": f.typeName(), "type": fmt.Sprintf("%T", value)},
	)
}
