package jsonmodels

// Package jsonmodels provides:
//
// - Declarative data models whose fields carry validation rules (models/, fields/)
// - Composable validators that both check runtime values and contribute JSON
//   Schema fragments (validators/)
// - Bidirectional translation between native patterns and delimited ECMA regex
//   literals (ecmaregex/)
// - A stable error model via ValidationError (code, message, params)
//
// Design policy:
// - Keep only public contracts in the root package: Validator, SchemaModifier,
//   ValidationError, ConfigurationError and the ordered Fragment type.
// - Place field declarations under fields/, model assembly under models/, the
//   built-in validators under validators/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := models.New("Person").
//		Field("name", fields.String().Required()).
//		Field("age", fields.Int().With(validators.Min(18)))
//
//	err := person.Set("age", 17)        // fails validation
//	schema := person.ToJSONSchema()     // ordered JSON Schema document
