package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioAngelino/jsonmodels"
	"github.com/AntonioAngelino/jsonmodels/validators"
)

func TestLength_MinimumOnly(t *testing.T) {
	v := validators.Length(5, 0)

	require.NoError(t, v.Validate("abcde"))
	require.NoError(t, v.Validate("abcdefgh"))

	err := v.Validate("abc")
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeTooShort, ve.Code)
	assert.Contains(t, ve.Message, "length is 3")
	assert.Contains(t, ve.Message, "minimum 5")
}

func TestLength_MaximumOnly(t *testing.T) {
	// The upper bound is enforced even without a lower bound.
	v := validators.Length(0, 3)

	require.NoError(t, v.Validate("abc"))

	err := v.Validate("abcdef")
	require.Error(t, err)
	ve, ok := jsonmodels.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeTooLong, ve.Code)
	assert.Contains(t, ve.Message, "length is 6")
	assert.Contains(t, ve.Message, "maximum 3")
}

func TestLength_BothBounds(t *testing.T) {
	v := validators.Length(2, 4)
	require.Error(t, v.Validate("a"))
	require.NoError(t, v.Validate("ab"))
	require.NoError(t, v.Validate("abcd"))
	require.Error(t, v.Validate("abcde"))
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	v := validators.Length(0, 3)
	require.NoError(t, v.Validate("日本語"))
}

func TestLength_SlicesAndMaps(t *testing.T) {
	v := validators.Length(2, 0)
	require.NoError(t, v.Validate([]any{1, 2}))
	require.Error(t, v.Validate([]any{1}))
	require.NoError(t, v.Validate(map[string]any{"a": 1, "b": 2}))
}

func TestLength_ValueWithoutLength(t *testing.T) {
	v := validators.Length(1, 0)
	err := v.Validate(42)
	require.Error(t, err)
	_, ok := jsonmodels.AsValidationError(err)
	assert.False(t, ok, "lengthless values surface a plain error")
}

func TestLength_NoBoundsIsConfigurationError(t *testing.T) {
	_, err := validators.NewLength(0, 0)
	require.Error(t, err)
	_, ok := jsonmodels.AsConfigurationError(err)
	assert.True(t, ok)

	assert.PanicsWithError(t, err.Error(), func() { validators.Length(0, 0) })
}

func TestLength_ModifySchema(t *testing.T) {
	f := jsonmodels.NewFragment()
	validators.Length(5, 20).ModifySchema(f)
	minLen, _ := f.Get("minLength")
	maxLen, _ := f.Get("maxLength")
	assert.Equal(t, 5, minLen)
	assert.Equal(t, 20, maxLen)

	f = jsonmodels.NewFragment()
	validators.Length(5, 0).ModifySchema(f)
	_, present := f.Get("maxLength")
	assert.False(t, present, "absent bound emits no key")
}
