package validators

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/AntonioAngelino/jsonmodels"
)

// LengthValidator enforces bounds on the length of strings (in runes), slices,
// arrays and maps. A zero bound is absent.
type LengthValidator struct {
	minimum int
	maximum int
}

// Length builds a length validator. A bound of zero means the bound is
// absent; declaring both bounds absent is a configuration error and panics
// with a *jsonmodels.ConfigurationError. NewLength is the non-panicking
// variant.
func Length(minimum, maximum int) *LengthValidator {
	v, err := NewLength(minimum, maximum)
	if err != nil {
		panic(err)
	}
	return v
}

// NewLength builds a length validator, returning a ConfigurationError when
// both bounds are absent.
func NewLength(minimum, maximum int) (*LengthValidator, error) {
	if minimum == 0 && maximum == 0 {
		return nil, jsonmodels.NewConfigurationError(
			"length validator requires a minimum or a maximum bound")
	}
	return &LengthValidator{minimum: minimum, maximum: maximum}, nil
}

// Validate implements jsonmodels.Validator. Each bound is checked only when it
// was declared. Values without a length surface a plain error unwrapped.
func (v *LengthValidator) Validate(value any) error {
	n, err := lengthOf(value)
	if err != nil {
		return err
	}
	if v.minimum != 0 && n < v.minimum {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeTooShort,
			fmt.Sprintf("value '%v' length is %d, which is lower than allowed minimum %d", value, n, v.minimum),
			map[string]any{"minLength": v.minimum, "length": n, "value": value},
		)
	}
	if v.maximum != 0 && n > v.maximum {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeTooLong,
			fmt.Sprintf("value '%v' length is %d, which is bigger than allowed maximum %d", value, n, v.maximum),
			map[string]any{"maxLength": v.maximum, "length": n, "value": value},
		)
	}
	return nil
}

// ModifySchema implements jsonmodels.SchemaModifier. Each bound is emitted
// independently when declared.
func (v *LengthValidator) ModifySchema(f *jsonmodels.Fragment) {
	if v.minimum != 0 {
		f.Set("minLength", v.minimum)
	}
	if v.maximum != 0 {
		f.Set("maxLength", v.maximum)
	}
}

func lengthOf(value any) (int, error) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("validators: value of type %T has no length", value)
}
