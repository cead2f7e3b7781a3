package fields

import (
	"math"

	json "github.com/goccy/go-json"
)

// String declares a string field.
func String() *Field { return &Field{kind: kindString} }

// Int declares an integer field. Whole-valued floats and json.Number values
// are accepted so decoded JSON documents validate without pre-conversion.
func Int() *Field { return &Field{kind: kindInt} }

// Float declares a number field accepting any numeric kind.
func Float() *Field { return &Field{kind: kindFloat} }

// Bool declares a boolean field.
func Bool() *Field { return &Field{kind: kindBool} }

func (f *Field) checkType(value any) error {
	switch f.kind {
	case kindString:
		if _, ok := value.(string); !ok {
			return f.invalidType(value)
		}
	case kindInt:
		if !isIntegral(value) {
			return f.invalidType(value)
		}
	case kindFloat:
		if !isNumeric(value) {
			return f.invalidType(value)
		}
	case kindBool:
		if _, ok := value.(bool); !ok {
			return f.invalidType(value)
		}
	case kindTime, kindDate, kindDateTime:
		return f.checkTemporal(value)
	case kindList:
		return f.checkList(value)
	case kindEmbedded:
		return f.checkEmbedded(value)
	}
	return nil
}

func isNumeric(value any) bool {
	switch n := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	}
	return false
}

func isIntegral(value any) bool {
	switch n := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case float64:
		return n == math.Trunc(n)
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return true
		}
		f, err := n.Float64()
		return err == nil && f == math.Trunc(f)
	}
	return false
}
