package value

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// Native is the set of Go primitive types with a direct Value mapping.
type Native interface {
	~bool |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64 |
		~string | ~[]byte
}

// From converts a native primitive into the Value variant of the same width
// and signedness. uint and int map to U64 and I64; byte slices are copied.
func From[T Native](x T) Value {
	if v, ok := fromExact(x); ok {
		return v
	}
	v, _ := fromKind(reflect.ValueOf(x))
	return v
}

// FromNative is the dynamic form of From. It reports false when x is not a
// native primitive. A Value is returned unchanged.
func FromNative(x any) (Value, bool) {
	if x == nil {
		return nil, false
	}
	if v, ok := FromPrimitive(x); ok {
		return v, true
	}
	return fromKind(reflect.ValueOf(x))
}

// FromPrimitive converts x only when its dynamic type is exactly one of the
// predeclared primitive types ([]byte included) or a Value variant. Named
// types such as `type Level int` report false, so their own conversion
// methods are not bypassed.
func FromPrimitive(x any) (Value, bool) {
	if v, ok := x.(Value); ok && reflect.TypeOf(x).Kind() != reflect.Pointer {
		return v, true
	}
	return fromExact(x)
}

func fromExact(x any) (Value, bool) {
	switch x := x.(type) {
	case bool:
		return Bool(x), true
	case uint8:
		return U8(x), true
	case uint16:
		return U16(x), true
	case uint32:
		return U32(x), true
	case uint64:
		return U64(x), true
	case uint:
		return U64(x), true
	case int8:
		return I8(x), true
	case int16:
		return I16(x), true
	case int32:
		return I32(x), true
	case int64:
		return I64(x), true
	case int:
		return I64(x), true
	case float32:
		return F32(x), true
	case float64:
		return F64(x), true
	case string:
		return String(x), true
	case []byte:
		return Bytes(slices.Clone(x)), true
	}
	return nil, false
}

func fromKind(rv reflect.Value) (Value, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.Uint8:
		return U8(rv.Uint()), true
	case reflect.Uint16:
		return U16(rv.Uint()), true
	case reflect.Uint32:
		return U32(rv.Uint()), true
	case reflect.Uint64, reflect.Uint:
		return U64(rv.Uint()), true
	case reflect.Int8:
		return I8(rv.Int()), true
	case reflect.Int16:
		return I16(rv.Int()), true
	case reflect.Int32:
		return I32(rv.Int()), true
	case reflect.Int64, reflect.Int:
		return I64(rv.Int()), true
	case reflect.Float32:
		return F32(rv.Float()), true
	case reflect.Float64:
		return F64(rv.Float()), true
	case reflect.String:
		return String(rv.String()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(slices.Clone(rv.Bytes())), true
		}
	}
	return nil, false
}
