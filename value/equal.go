package value

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// EqualSigned reports whether v projects to the same int64 as x.
func EqualSigned[T constraints.Signed](v Value, x T) bool {
	return eqInt64(v, int64(x))
}

// EqualUnsigned reports whether v projects to the same uint64 as x.
func EqualUnsigned[T constraints.Unsigned](v Value, x T) bool {
	return eqUint64(v, uint64(x))
}

// EqualFloat reports whether v projects to the same float64 as x.
// Comparison follows IEEE 754, so NaN never matches.
func EqualFloat[T constraints.Float](v Value, x T) bool {
	return eqFloat64(v, float64(x))
}

func EqualBool[T ~bool](v Value, x T) bool {
	return eqBool(v, bool(x))
}

func EqualString[T ~string](v Value, x T) bool {
	return eqString(v, string(x))
}

// Equals compares a and b in either order. Two Values compare structurally
// with Equal. A Value and a native bool, integer, float or string compare by
// projecting the Value into the class of the native operand, regardless of
// which width the Value stores. Any other pairing is false.
func Equals(a, b any) bool {
	va, aok := a.(Value)
	vb, bok := b.(Value)
	switch {
	case aok && bok:
		return Equal(va, vb)
	case aok:
		return equalNative(va, b)
	case bok:
		return equalNative(vb, a)
	}
	return false
}

func equalNative(v Value, x any) bool {
	if x == nil {
		return false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return eqInt64(v, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return eqUint64(v, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return eqFloat64(v, rv.Float())
	case reflect.Bool:
		return eqBool(v, rv.Bool())
	case reflect.String:
		return eqString(v, rv.String())
	}
	return false
}

func eqInt64(v Value, x int64) bool {
	n, ok := AsInt64(v)
	return ok && n == x
}

func eqUint64(v Value, x uint64) bool {
	n, ok := AsUint64(v)
	return ok && n == x
}

func eqFloat64(v Value, x float64) bool {
	f, ok := AsFloat64(v)
	return ok && f == x
}

func eqBool(v Value, x bool) bool {
	b, ok := AsBool(v)
	return ok && b == x
}

func eqString(v Value, x string) bool {
	s, ok := AsString(v)
	return ok && s == x
}
