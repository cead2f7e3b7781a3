// Package validators provides the built-in field validators: Min, Max, Regex,
// Length and Value. Each validator checks runtime values and, where it
// implements jsonmodels.SchemaModifier, contributes its constraint to the
// field's JSON Schema fragment.
//
// Validators are immutable once declared on a field. Constructors that can be
// misconfigured (Length, Value) panic with a *jsonmodels.ConfigurationError at
// declaration time; NewLength and NewValue are the non-panicking variants.
package validators
