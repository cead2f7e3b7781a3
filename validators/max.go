package validators

import (
	"fmt"

	"github.com/AntonioAngelino/jsonmodels"
)

// MaxValidator enforces an upper bound on ordered values.
type MaxValidator struct {
	maximum   any
	exclusive bool
}

// Max builds an upper-bound validator accepting values lower than or equal to
// maximum. Chain Exclusive to reject the bound itself.
func Max(maximum any) *MaxValidator {
	return &MaxValidator{maximum: maximum}
}

// Exclusive makes the comparison strict and switches the emitted schema key
// from maximum alone to maximum plus exclusiveMaximum. The two effects always
// change together.
func (v *MaxValidator) Exclusive() *MaxValidator {
	v.exclusive = true
	return v
}

// Validate implements jsonmodels.Validator. Unorderable operand pairs surface
// the ordering error unwrapped.
func (v *MaxValidator) Validate(value any) error {
	c, err := compareValues(value, v.maximum)
	if err != nil {
		return err
	}
	if v.exclusive {
		if c >= 0 {
			return jsonmodels.NewValidationError(
				jsonmodels.CodeTooBig,
				fmt.Sprintf("'%v' is bigger or equal than maximum ('%v')", value, v.maximum),
				map[string]any{"maximum": v.maximum, "exclusive": true, "value": value},
			)
		}
		return nil
	}
	if c > 0 {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeTooBig,
			fmt.Sprintf("'%v' is bigger than maximum ('%v')", value, v.maximum),
			map[string]any{"maximum": v.maximum, "exclusive": false, "value": value},
		)
	}
	return nil
}

// ModifySchema implements jsonmodels.SchemaModifier. The exclusiveMaximum key
// is omitted entirely (never set to false) for inclusive bounds.
func (v *MaxValidator) ModifySchema(f *jsonmodels.Fragment) {
	f.Set("maximum", v.maximum)
	if v.exclusive {
		f.Set("exclusiveMaximum", true)
	}
}
