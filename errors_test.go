package jsonmodels_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioAngelino/jsonmodels"
)

func TestAsValidationError(t *testing.T) {
	ve := jsonmodels.NewValidationError(jsonmodels.CodeTooSmall, "too small", map[string]any{"minimum": 18})

	got, ok := jsonmodels.AsValidationError(ve)
	require.True(t, ok)
	assert.Equal(t, jsonmodels.CodeTooSmall, got.Code)
	assert.Equal(t, "too small", got.Error())

	// Wrapped errors unwrap through errors.As.
	wrapped := fmt.Errorf("field age: %w", ve)
	got, ok = jsonmodels.AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 18, got.Params["minimum"])

	_, ok = jsonmodels.AsValidationError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = jsonmodels.AsValidationError(nil)
	assert.False(t, ok)
}

func TestAsConfigurationError(t *testing.T) {
	ce := jsonmodels.NewConfigurationError("missing %s", "bounds")
	assert.Equal(t, "missing bounds", ce.Error())

	got, ok := jsonmodels.AsConfigurationError(fmt.Errorf("declaring field: %w", ce))
	require.True(t, ok)
	assert.Equal(t, "missing bounds", got.Message)

	_, ok = jsonmodels.AsConfigurationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidatorFunc(t *testing.T) {
	calls := 0
	fn := jsonmodels.ValidatorFunc(func(v any) error {
		calls++
		if v == "bad" {
			return errors.New("rejected")
		}
		return nil
	})

	require.NoError(t, fn.Validate("good"))
	require.Error(t, fn.Validate("bad"))
	assert.Equal(t, 2, calls)

	// A bare function carries no schema contribution.
	_, ok := any(fn).(jsonmodels.SchemaModifier)
	assert.False(t, ok)
}
