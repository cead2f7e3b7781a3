// Package utilities holds helpers around generated schema documents,
// primarily the order-insensitive comparison used by tests.
package utilities

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CompareSchemas reports whether two schema documents are equivalent. Object
// key order and array element order are both ignored; JSON Schema keeps no
// meaning in either. Inputs may be Fragments, maps, slices, or raw JSON
// bytes.
func CompareSchemas(a, b any) bool {
	return Diff(a, b) == ""
}

// Diff renders a human-readable difference between two schema documents, or
// the empty string when they are equivalent.
func Diff(a, b any) string {
	na, err := normalize(a)
	if err != nil {
		return fmt.Sprintf("cannot normalize first document: %v", err)
	}
	nb, err := normalize(b)
	if err != nil {
		return fmt.Sprintf("cannot normalize second document: %v", err)
	}
	return cmp.Diff(na, nb, cmpopts.SortSlices(lessAny))
}

// normalize round-trips a document through JSON so that Fragments, maps and
// typed slices all compare on their rendered shape.
func normalize(v any) (any, error) {
	raw, ok := v.([]byte)
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// lessAny is a strict weak ordering over arbitrary JSON values; fmt renders
// maps with sorted keys, so the ordering is stable.
func lessAny(a, b any) bool {
	return fmt.Sprint(a) < fmt.Sprint(b)
}
