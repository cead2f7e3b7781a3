package validators

import (
	"fmt"
	"strings"

	"github.com/AntonioAngelino/jsonmodels"
)

// ValueValidator restricts a value to a fixed set of allowed values.
type ValueValidator struct {
	allowed []any
}

// Value builds an allowed-values validator. A nil slice is a configuration
// error and panics with a *jsonmodels.ConfigurationError; an explicitly empty
// slice is accepted and then rejects every input. NewValue is the
// non-panicking variant.
func Value(allowed []any) *ValueValidator {
	v, err := NewValue(allowed)
	if err != nil {
		panic(err)
	}
	return v
}

// NewValue builds an allowed-values validator, returning a ConfigurationError
// when the slice is nil.
func NewValue(allowed []any) (*ValueValidator, error) {
	if allowed == nil {
		return nil, jsonmodels.NewConfigurationError(
			"value validator requires a sequence of allowed values")
	}
	return &ValueValidator{allowed: allowed}, nil
}

// Validate implements jsonmodels.Validator. Membership is by equality, not
// identity.
func (v *ValueValidator) Validate(value any) error {
	for _, a := range v.allowed {
		if equalValues(a, value) {
			return nil
		}
	}
	return jsonmodels.NewValidationError(
		jsonmodels.CodeInvalidEnum,
		fmt.Sprintf("value '%v' is not one of allowed values: %s", value, v.joinAllowed()),
		map[string]any{"allowedValues": v.allowed, "value": value},
	)
}

// ModifySchema implements jsonmodels.SchemaModifier. The non-standard
// allowedValues keyword (not enum) is emitted for compatibility with existing
// consumers, and only when the sequence is non-empty.
func (v *ValueValidator) ModifySchema(f *jsonmodels.Fragment) {
	if len(v.allowed) > 0 {
		f.Set("allowedValues", v.allowed)
	}
}

func (v *ValueValidator) joinAllowed() string {
	parts := make([]string, len(v.allowed))
	for i, a := range v.allowed {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ", ")
}
