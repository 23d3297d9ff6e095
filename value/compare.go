package value

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Compare defines the total order over values used to sort Map keys.
//
// Values of different kinds are ordered by Kind. Floats order NaN above every
// other number and equal to itself; -0 and +0 are equal. Bytes compare
// bytewise, Seq and Map lexicographically. A nil Value is treated as Unit.
func Compare(a, b Value) int {
	a, b = orNull(a), orNull(b)
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		return compareOrdered(ka, kb)
	}

	switch a := a.(type) {
	case Unit:
		return 0
	case Bool:
		return compareBool(bool(a), bool(b.(Bool)))
	case U8:
		return compareOrdered(a, b.(U8))
	case U16:
		return compareOrdered(a, b.(U16))
	case U32:
		return compareOrdered(a, b.(U32))
	case U64:
		return compareOrdered(a, b.(U64))
	case I8:
		return compareOrdered(a, b.(I8))
	case I16:
		return compareOrdered(a, b.(I16))
	case I32:
		return compareOrdered(a, b.(I32))
	case I64:
		return compareOrdered(a, b.(I64))
	case F32:
		return compareFloat(a, b.(F32))
	case F64:
		return compareFloat(a, b.(F64))
	case Char:
		return compareOrdered(a, b.(Char))
	case String:
		return compareOrdered(a, b.(String))
	case Bytes:
		return bytes.Compare(a, b.(Bytes))
	case Seq:
		return compareSeq(a, b.(Seq))
	case Map:
		return compareMap(a, b.(Map))
	}
	panic("value: unknown variant " + a.Kind().String())
}

// Equal reports whether a and b hold the same variant with equal payloads,
// recursively. Numbers of different widths are never equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func orNull(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareFloat[T constraints.Float](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return compareOrdered(a, b)
}

func compareSeq(a, b Seq) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareOrdered(len(a), len(b))
}

func compareMap(a, b Map) int {
	for i := 0; i < len(a.entries) && i < len(b.entries); i++ {
		if c := Compare(a.entries[i].Key, b.entries[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.entries[i].Value, b.entries[i].Value); c != 0 {
			return c
		}
	}
	return compareOrdered(len(a.entries), len(b.entries))
}
