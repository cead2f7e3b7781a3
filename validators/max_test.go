package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioAngelino/jsonmodels"
	"github.com/AntonioAngelino/jsonmodels/validators"
)

func TestMax_Inclusive(t *testing.T) {
	v := validators.Max(18)

	require.NoError(t, v.Validate(18))
	require.NoError(t, v.Validate(17))

	err := v.Validate(19)
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeTooBig, ve.Code)
	assert.Contains(t, ve.Message, "19")
	assert.Contains(t, ve.Message, "18")
}

func TestMax_Exclusive(t *testing.T) {
	v := validators.Max(18).Exclusive()

	require.NoError(t, v.Validate(17))

	err := v.Validate(18)
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeTooBig, ve.Code)
	assert.Contains(t, ve.Message, "bigger or equal")

	require.Error(t, v.Validate(19))
}

func TestMax_ModifySchema(t *testing.T) {
	f := jsonmodels.NewFragment()
	validators.Max(18).ModifySchema(f)
	got, _ := f.Get("maximum")
	assert.Equal(t, 18, got)
	_, present := f.Get("exclusiveMaximum")
	assert.False(t, present, "inclusive bound must omit exclusiveMaximum entirely")
}

func TestMax_ModifySchema_Exclusive(t *testing.T) {
	f := jsonmodels.NewFragment()
	validators.Max(18).Exclusive().ModifySchema(f)
	got, _ := f.Get("maximum")
	assert.Equal(t, 18, got)
	excl, present := f.Get("exclusiveMaximum")
	require.True(t, present)
	assert.Equal(t, true, excl)
}
