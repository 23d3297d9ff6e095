// Package convert translates arbitrary Go values to and from value.Value.
//
// ToValue is the fallback used by the literal grammar for bound arguments
// that are not native primitives. FromValue is its inverse. Both preserve
// numeric widths: an int16 field becomes an I16 and an I16 fills an int16.
//
// Struct fields are named by the "value" struct tag, falling back to the
// "json" tag and then the Go field name. The options "omitempty" and "-"
// behave as in encoding/json.
package convert
