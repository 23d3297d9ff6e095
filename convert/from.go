package convert

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/leonardinius/govalue/value"
)

var (
	valueType           = reflect.TypeOf((*value.Value)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// FromValue stores v into the Go value pointed to by out, the inverse of
// ToValue.
//
// Integer targets accept any integer variant whose payload fits, float
// targets accept float and integer variants, string targets accept String
// and Char. Unit clears pointers, slices, maps and interfaces. Map keys
// without a matching struct field are ignored. Any other mismatch between
// the tree and the target yields an *Error.
func FromValue(v value.Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &Error{Op: opFrom, Message: fmt.Sprintf("target must be a non-nil pointer, got %T", out)}
	}
	return fromValue(v, rv.Elem(), "")
}

func mismatch(v value.Value, rv reflect.Value, path string) error {
	return &Error{Op: opFrom, Path: path, Message: fmt.Sprintf("cannot store %s in %s", v.Kind(), rv.Type())}
}

func fromValue(v value.Value, rv reflect.Value, path string) error {
	if v == nil {
		v = value.Null
	}

	if rv.Type() == valueType {
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	if s, ok := v.(value.String); ok && rv.CanAddr() && rv.Addr().Type().Implements(textUnmarshalerType) {
		if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return &Error{Op: opFrom, Path: path, Message: err.Error(), Err: err}
		}
		return nil
	}

	_, isUnit := v.(value.Unit)

	switch rv.Kind() {
	case reflect.Pointer:
		if isUnit {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return fromValue(v, rv.Elem(), path)

	case reflect.Interface:
		if isUnit {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.NumMethod() > 0 {
			if !reflect.TypeOf(v).AssignableTo(rv.Type()) {
				return mismatch(v, rv, path)
			}
			rv.Set(reflect.ValueOf(v))
			return nil
		}
		x, err := natural(v, path)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(x))
		return nil

	case reflect.Bool:
		b, ok := value.AsBool(v)
		if !ok {
			return mismatch(v, rv, path)
		}
		rv.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := value.AsInt64(v)
		if !ok || rv.OverflowInt(n) {
			return mismatch(v, rv, path)
		}
		rv.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := value.AsUint64(v)
		if !ok || rv.OverflowUint(n) {
			return mismatch(v, rv, path)
		}
		rv.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := value.AsFloat64(v)
		if !ok || rv.OverflowFloat(f) {
			return mismatch(v, rv, path)
		}
		rv.SetFloat(f)
		return nil

	case reflect.String:
		switch v := v.(type) {
		case value.String:
			rv.SetString(string(v))
		case value.Char:
			rv.SetString(string(rune(v)))
		default:
			return mismatch(v, rv, path)
		}
		return nil

	case reflect.Slice:
		return fromSlice(v, rv, path)

	case reflect.Array:
		return fromArray(v, rv, path)

	case reflect.Map:
		return fromMap(v, rv, path)

	case reflect.Struct:
		return fromStruct(v, rv, path)
	}

	return &Error{Op: opFrom, Path: path, Message: fmt.Sprintf("unsupported type %s", rv.Type())}
}

func fromSlice(v value.Value, rv reflect.Value, path string) error {
	switch v := v.(type) {
	case value.Unit:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case value.Bytes:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return mismatch(v, rv, path)
		}
		blob := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i, b := range v {
			blob.Index(i).SetUint(uint64(b))
		}
		rv.Set(blob)
		return nil
	case value.Seq:
		seq := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i, elem := range v {
			if err := fromValue(elem, seq.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		rv.Set(seq)
		return nil
	}
	return mismatch(v, rv, path)
}

func fromArray(v value.Value, rv reflect.Value, path string) error {
	switch v := v.(type) {
	case value.Bytes:
		if rv.Type().Elem().Kind() != reflect.Uint8 || len(v) != rv.Len() {
			return mismatch(v, rv, path)
		}
		for i, b := range v {
			rv.Index(i).SetUint(uint64(b))
		}
		return nil
	case value.Seq:
		if len(v) != rv.Len() {
			return &Error{Op: opFrom, Path: path, Message: fmt.Sprintf("cannot store %d elements in %s", len(v), rv.Type())}
		}
		for i, elem := range v {
			if err := fromValue(elem, rv.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(v, rv, path)
}

func fromMap(v value.Value, rv reflect.Value, path string) error {
	switch v := v.(type) {
	case value.Unit:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case value.Map:
		m := reflect.MakeMapWithSize(rv.Type(), v.Len())
		var err error
		v.Range(func(key, val value.Value) bool {
			elemPath := fieldPath(path, value.Format(key))
			k := reflect.New(rv.Type().Key()).Elem()
			if err = fromValue(key, k, elemPath); err != nil {
				return false
			}
			e := reflect.New(rv.Type().Elem()).Elem()
			if err = fromValue(val, e, elemPath); err != nil {
				return false
			}
			m.SetMapIndex(k, e)
			return true
		})
		if err != nil {
			return err
		}
		rv.Set(m)
		return nil
	}
	return mismatch(v, rv, path)
}

func fromStruct(v value.Value, rv reflect.Value, path string) error {
	m, ok := v.(value.Map)
	if !ok {
		return mismatch(v, rv, path)
	}
	for _, f := range structFields(rv.Type()) {
		val, found := m.Get(value.String(f.name))
		if !found {
			continue
		}
		if err := fromValue(val, rv.FieldByIndex(f.index), fieldPath(path, f.name)); err != nil {
			return err
		}
	}
	return nil
}

// natural returns the plain Go form of v used to fill interface targets.
func natural(v value.Value, path string) (any, error) {
	switch v := v.(type) {
	case value.Unit:
		return nil, nil
	case value.Bool:
		return bool(v), nil
	case value.U8:
		return uint8(v), nil
	case value.U16:
		return uint16(v), nil
	case value.U32:
		return uint32(v), nil
	case value.U64:
		return uint64(v), nil
	case value.I8:
		return int8(v), nil
	case value.I16:
		return int16(v), nil
	case value.I32:
		return int32(v), nil
	case value.I64:
		return int64(v), nil
	case value.F32:
		return float32(v), nil
	case value.F64:
		return float64(v), nil
	case value.Char:
		return rune(v), nil
	case value.String:
		return string(v), nil
	case value.Bytes:
		return append([]byte(nil), v...), nil
	case value.Seq:
		seq := make([]any, len(v))
		for i, elem := range v {
			x, err := natural(elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			seq[i] = x
		}
		return seq, nil
	case value.Map:
		return naturalMap(v, path)
	}
	return nil, &Error{Op: opFrom, Path: path, Message: fmt.Sprintf("unknown variant %T", v)}
}

// naturalMap uses map[string]any when every key is a String and map[any]any
// otherwise. Keys without a comparable Go form are rejected.
func naturalMap(m value.Map, path string) (any, error) {
	allStrings := true
	m.Range(func(key, _ value.Value) bool {
		_, allStrings = key.(value.String)
		return allStrings
	})

	var (
		strs = make(map[string]any, m.Len())
		anys = make(map[any]any, m.Len())
		err  error
	)
	m.Range(func(key, val value.Value) bool {
		elemPath := fieldPath(path, value.Format(key))
		var x, k any
		if x, err = natural(val, elemPath); err != nil {
			return false
		}
		if allStrings {
			strs[string(key.(value.String))] = x
			return true
		}
		if k, err = natural(key, elemPath); err != nil {
			return false
		}
		if k != nil && !reflect.TypeOf(k).Comparable() {
			err = &Error{Op: opFrom, Path: elemPath, Message: fmt.Sprintf("%s key has no comparable Go form", key.Kind())}
			return false
		}
		anys[k] = x
		return true
	})
	if err != nil {
		return nil, err
	}
	if allStrings {
		return strs, nil
	}
	return anys, nil
}
