package validators

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// compareValues orders two values of like kind: every numeric kind orders
// against every other numeric kind, strings order against strings, and
// time.Time orders against time.Time. Unorderable operand pairs return an
// error which the bound validators surface as-is, without wrapping it in a
// ValidationError.
func compareValues(a, b any) (int, error) {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			}
			return 0, nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs), nil
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt), nil
		}
	}
	return 0, fmt.Errorf("validators: cannot order %T against %T", a, b)
}

// equalValues reports equality for membership checks: orderable pairs compare
// by ordering (so 18 equals 18.0), everything else by deep equality.
func equalValues(a, b any) bool {
	if c, err := compareValues(a, b); err == nil {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
