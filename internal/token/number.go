package token

import "fmt"

// Number is the literal payload of a NUMBER token. Digits hold the magnitude
// without base prefix, separators or suffix.
type Number struct {
	Digits string
	Base   int
	Float  bool
	Suffix string
}

// GoString implements fmt.GoStringer.
func (n Number) GoString() string {
	return fmt.Sprintf("token.Number{Digits: %q, Base: %d, Float: %t, Suffix: %q}", n.Digits, n.Base, n.Float, n.Suffix)
}

var _ fmt.GoStringer = Number{}
