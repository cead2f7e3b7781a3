// Package fields provides the typed field declarations models are built from:
// scalar kinds (String, Int, Float, Bool), date/time kinds carrying JSON
// Schema formats, and the composite List and Embedded kinds that nest models.
//
// A field type-checks assigned values first, then runs its declared validators
// in order, stopping at the first failure.
package fields
