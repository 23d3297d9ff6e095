package convert

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/leonardinius/govalue/value"
)

// Valuer is implemented by types that build their own Value.
type Valuer interface {
	ToValue() (value.Value, error)
}

// ToValue converts x into a Value.
//
// Native primitives keep their width, a Value is returned unchanged, nil
// pointers, interfaces, maps and slices become Unit, slices and arrays become
// Seq (Bytes for byte elements), maps become Map and structs become a Map
// keyed by field name. Channels, functions and complex numbers cannot be
// represented and yield an *Error.
func ToValue(x any) (value.Value, error) {
	if x == nil {
		return value.Null, nil
	}
	return toValue(reflect.ValueOf(x), "", visits{})
}

func toValue(rv reflect.Value, path string, visited visits) (value.Value, error) {
	if !rv.IsValid() {
		return value.Null, nil
	}

	// *value.U8 and friends satisfy Value too; only the variants themselves pass through.
	if rv.CanInterface() && rv.Kind() != reflect.Pointer {
		if v, ok := rv.Interface().(value.Value); ok {
			return v, nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return value.Null, nil
		}
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Valuer:
			v, err := x.ToValue()
			if err != nil {
				return nil, &Error{Op: opTo, Path: path, Message: err.Error(), Err: err}
			}
			return v, nil
		case encoding.TextMarshaler:
			text, err := x.MarshalText()
			if err != nil {
				return nil, &Error{Op: opTo, Path: path, Message: err.Error(), Err: err}
			}
			return value.String(text), nil
		}
		if v, ok := value.FromNative(rv.Interface()); ok {
			return v, nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		leave, err := visited.enter(rv, path)
		if err != nil {
			return nil, err
		}
		defer leave()
		return toValue(rv.Elem(), path, visited)

	case reflect.Interface:
		return toValue(rv.Elem(), path, visited)

	case reflect.Slice, reflect.Array:
		return toSeq(rv, path, visited)

	case reflect.Map:
		return toMap(rv, path, visited)

	case reflect.Struct:
		return toStruct(rv, path, visited)
	}

	return nil, &Error{Op: opTo, Path: path, Message: fmt.Sprintf("unsupported type %s", rv.Type())}
}

func toSeq(rv reflect.Value, path string, visited visits) (value.Value, error) {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		blob := make(value.Bytes, rv.Len())
		for i := range blob {
			blob[i] = byte(rv.Index(i).Uint())
		}
		return blob, nil
	}

	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		leave, err := visited.enter(rv, path)
		if err != nil {
			return nil, err
		}
		defer leave()
	}

	seq := make(value.Seq, rv.Len())
	for i := range seq {
		elem, err := toValue(rv.Index(i), indexPath(path, i), visited)
		if err != nil {
			return nil, err
		}
		seq[i] = elem
	}
	return seq, nil
}

func toMap(rv reflect.Value, path string, visited visits) (value.Value, error) {
	leave, err := visited.enter(rv, path)
	if err != nil {
		return nil, err
	}
	defer leave()

	var entries value.MapBuilder
	iter := rv.MapRange()
	for iter.Next() {
		elemPath := fieldPath(path, fmt.Sprint(iter.Key().Interface()))
		k, err := toValue(iter.Key(), elemPath, visited)
		if err != nil {
			return nil, err
		}
		v, err := toValue(iter.Value(), elemPath, visited)
		if err != nil {
			return nil, err
		}
		entries.Insert(k, v)
	}
	return entries.Map(), nil
}

func toStruct(rv reflect.Value, path string, visited visits) (value.Value, error) {
	var entries value.MapBuilder
	for _, f := range structFields(rv.Type()) {
		fv := rv.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		v, err := toValue(fv, fieldPath(path, f.name), visited)
		if err != nil {
			return nil, err
		}
		entries.Insert(value.String(f.name), v)
	}
	return entries.Map(), nil
}

// visit identifies a pointer, map or slice under conversion. Slices sharing
// a backing array differ by length, as in encoding/json.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// visits maps each container on the current path to where it was entered.
type visits map[visit]string

func (v visits) enter(rv reflect.Value, path string) (func(), error) {
	key := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		key.len = rv.Len()
	}
	if prev, seen := v[key]; seen {
		return nil, &Error{Op: opTo, Path: path, Message: fmt.Sprintf("circular reference to %q", prev)}
	}
	v[key] = path
	return func() { delete(v, key) }, nil
}
