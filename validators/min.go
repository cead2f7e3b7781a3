package validators

import (
	"fmt"

	"github.com/AntonioAngelino/jsonmodels"
)

// MinValidator enforces a lower bound on ordered values.
type MinValidator struct {
	minimum   any
	exclusive bool
}

// Min builds a lower-bound validator accepting values greater than or equal to
// minimum. Chain Exclusive to reject the bound itself.
func Min(minimum any) *MinValidator {
	return &MinValidator{minimum: minimum}
}

// Exclusive makes the comparison strict and switches the emitted schema key
// from minimum alone to minimum plus exclusiveMinimum. The two effects always
// change together.
func (v *MinValidator) Exclusive() *MinValidator {
	v.exclusive = true
	return v
}

// Validate implements jsonmodels.Validator. Unorderable operand pairs surface
// the ordering error unwrapped.
func (v *MinValidator) Validate(value any) error {
	c, err := compareValues(value, v.minimum)
	if err != nil {
		return err
	}
	if v.exclusive {
		if c <= 0 {
			return jsonmodels.NewValidationError(
				jsonmodels.CodeTooSmall,
				fmt.Sprintf("'%v' is lower or equal than minimum ('%v')", value, v.minimum),
				map[string]any{"minimum": v.minimum, "exclusive": true, "value": value},
			)
		}
		return nil
	}
	if c < 0 {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeTooSmall,
			fmt.Sprintf("'%v' is lower than minimum ('%v')", value, v.minimum),
			map[string]any{"minimum": v.minimum, "exclusive": false, "value": value},
		)
	}
	return nil
}

// ModifySchema implements jsonmodels.SchemaModifier. The exclusiveMinimum key
// is omitted entirely (never set to false) for inclusive bounds.
func (v *MinValidator) ModifySchema(f *jsonmodels.Fragment) {
	f.Set("minimum", v.minimum)
	if v.exclusive {
		f.Set("exclusiveMinimum", true)
	}
}
