package value

import "math"

// The projections below are best-effort views of a payload in one canonical
// native representation. They exist for comparisons against native
// primitives and report false when the variant cannot be represented.

// AsInt64 projects signed variants, and unsigned variants up to math.MaxInt64.
func AsInt64(v Value) (int64, bool) {
	switch v := v.(type) {
	case I8:
		return int64(v), true
	case I16:
		return int64(v), true
	case I32:
		return int64(v), true
	case I64:
		return int64(v), true
	case U8:
		return int64(v), true
	case U16:
		return int64(v), true
	case U32:
		return int64(v), true
	case U64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

// AsUint64 projects unsigned variants, and signed variants that are not negative.
func AsUint64(v Value) (uint64, bool) {
	switch v := v.(type) {
	case U8:
		return uint64(v), true
	case U16:
		return uint64(v), true
	case U32:
		return uint64(v), true
	case U64:
		return uint64(v), true
	}
	if n, ok := asSigned(v); ok && n >= 0 {
		return uint64(n), true
	}
	return 0, false
}

// AsFloat64 projects float variants and widens integer variants. Integers
// beyond 2^53 lose precision.
func AsFloat64(v Value) (float64, bool) {
	switch v := v.(type) {
	case F32:
		return float64(v), true
	case F64:
		return float64(v), true
	case U64:
		return float64(v), true
	}
	if n, ok := AsInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

func asSigned(v Value) (int64, bool) {
	switch v := v.(type) {
	case I8:
		return int64(v), true
	case I16:
		return int64(v), true
	case I32:
		return int64(v), true
	case I64:
		return int64(v), true
	}
	return 0, false
}
