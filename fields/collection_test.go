package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioAngelino/jsonmodels"
	"github.com/AntonioAngelino/jsonmodels/fields"
	"github.com/AntonioAngelino/jsonmodels/models"
)

func TestEmbedded_SingleModel(t *testing.T) {
	car := models.New("Car").
		Field("brand", fields.String().Required())

	f := fields.Embedded(car)
	require.NoError(t, f.Validate(map[string]any{"brand": "Viper"}))

	err := f.Validate(map[string]any{})
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeRequired, ve.Code)

	require.Error(t, f.Validate("not an object"))
}

func TestEmbedded_Union(t *testing.T) {
	viper := models.New("Viper").
		Field("brand", fields.String().Required())
	laptop := models.New("Laptop").
		Field("battery_voltage", fields.Float().Required())

	f := fields.Embedded(viper, laptop)
	require.NoError(t, f.Validate(map[string]any{"brand": "Viper"}))
	require.NoError(t, f.Validate(map[string]any{"battery_voltage": 19.5}))

	err := f.Validate(map[string]any{})
	require.Error(t, err, "neither model accepts an empty object")
}

func TestList_ValidatesEachItem(t *testing.T) {
	toy := models.New("Toy").
		Field("name", fields.String().Required())

	f := fields.List(toy)
	require.NoError(t, f.Validate([]any{
		map[string]any{"name": "robot"},
		map[string]any{"name": "doll"},
	}))

	err := f.Validate([]any{
		map[string]any{"name": "robot"},
		map[string]any{},
	})
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Message, "item 1")

	require.Error(t, f.Validate("not a list"))
}

func TestList_DescribeSchema(t *testing.T) {
	toy := models.New("Toy").
		Field("name", fields.String().Required())

	frag := jsonmodels.NewFragment()
	fields.List(toy).DescribeSchema(frag)

	typ, _ := frag.Get("type")
	assert.Equal(t, "array", typ)

	items, present := frag.Get("items")
	require.True(t, present)
	itemsFrag, ok := items.(*jsonmodels.Fragment)
	require.True(t, ok)
	itemType, _ := itemsFrag.Get("type")
	assert.Equal(t, "object", itemType)
}

func TestEmbedded_UnionDescribeSchema(t *testing.T) {
	a := models.New("A").Field("x", fields.String())
	b := models.New("B").Field("y", fields.Int())

	frag := jsonmodels.NewFragment()
	fields.Embedded(a, b).DescribeSchema(frag)

	oneOf, present := frag.Get("oneOf")
	require.True(t, present)
	variants, ok := oneOf.([]any)
	require.True(t, ok)
	assert.Len(t, variants, 2)
	_, present = frag.Get("type")
	assert.False(t, present, "unions carry no top-level type")
}

func TestListAndEmbedded_RequireModels(t *testing.T) {
	assert.Panics(t, func() { fields.List() })
	assert.Panics(t, func() { fields.Embedded() })
}
