package jsonmodels

// Validator enforces one runtime constraint on a field value. Validate returns
// nil when the value satisfies the constraint and a *ValidationError (or, for
// host-level failures such as unorderable operands, a plain error) otherwise.
//
// Validators are constructed once per field declaration and must not mutate
// themselves in Validate or ModifySchema; the field layer invokes them in
// declaration order and stops at the first failure.
type Validator interface {
	Validate(v any) error
}

// SchemaModifier is the optional second capability of a validator: describing
// its constraint in a JSON Schema fragment. Mutation is additive; a validator
// never removes a key another validator set, and key collisions resolve
// last-writer-wins in declaration order.
//
// Validators that do not implement SchemaModifier are simply skipped during
// schema generation.
type SchemaModifier interface {
	ModifySchema(f *Fragment)
}

// ValidatorFunc adapts a bare function into a Validator with no schema
// contribution. It is the extension point for user-defined checks:
//
//	fields.String().With(jsonmodels.ValidatorFunc(func(v any) error { ... }))
type ValidatorFunc func(v any) error

// Validate implements Validator.
func (fn ValidatorFunc) Validate(v any) error { return fn(v) }
