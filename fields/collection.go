package fields

import (
	"fmt"

	"github.com/AntonioAngelino/jsonmodels"
)

// List declares an array field whose items are instances of the given models.
// With more than one model the items schema becomes a oneOf union and a value
// is accepted when any model accepts it.
func List(items ...ModelRef) *Field {
	if len(items) == 0 {
		panic(jsonmodels.NewConfigurationError("list field requires at least one item model"))
	}
	return &Field{kind: kindList, refs: items}
}

// Embedded declares a nested-object field. With more than one model the
// schema becomes a oneOf union and a value is accepted when any model accepts
// it.
func Embedded(models ...ModelRef) *Field {
	if len(models) == 0 {
		panic(jsonmodels.NewConfigurationError("embedded field requires at least one model"))
	}
	return &Field{kind: kindEmbedded, refs: models}
}

func (f *Field) checkList(value any) error {
	items, ok := value.([]any)
	if !ok {
		return f.invalidType(value)
	}
	for i, item := range items {
		if err := f.matchRefs(item); err != nil {
			return jsonmodels.NewValidationError(
				jsonmodels.CodeInvalidType,
				fmt.Sprintf("item %d: %v", i, err),
				map[string]any{"index": i},
			)
		}
	}
	return nil
}

func (f *Field) checkEmbedded(value any) error {
	return f.matchRefs(value)
}

// matchRefs accepts a value when any declared model validates it. With a
// single model the model's own error is surfaced; union mismatches report the
// candidate model names.
func (f *Field) matchRefs(value any) error {
	if len(f.refs) == 1 {
		return f.refs[0].ValidateValue(value)
	}
	for _, ref := range f.refs {
		if err := ref.ValidateValue(value); err == nil {
			return nil
		}
	}
	return jsonmodels.NewValidationError(
		jsonmodels.CodeInvalidType,
		fmt.Sprintf("value '%v' does not match any of models %s", value, refNames(f.refs)),
		map[string]any{"models": refNames(f.refs)},
	)
}

func refNames(refs []ModelRef) []string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name()
	}
	return names
}
