package convert_test

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/govalue/convert"
	"github.com/leonardinius/govalue/value"
)

type Base struct {
	ID uint32 `value:"id"`
}

type person struct {
	Base
	Name    string            `json:"name"`
	Email   string            `value:"email,omitempty"`
	Tags    []string          `value:"tags"`
	Avatar  []byte            `value:"avatar"`
	Scores  map[string]int8   `value:"scores"`
	Manager *person           `value:"manager"`
	Extra   map[string]string `value:"-"`
	secret  string
}

type point struct{ X, Y int }

func (p point) ToValue() (value.Value, error) {
	return value.Seq{value.I64(p.X), value.I64(p.Y)}, nil
}

type broken struct{}

var errBroken = errors.New("broken on purpose")

func (broken) ToValue() (value.Value, error) {
	return nil, errBroken
}

func assertValue(t *testing.T, expected, actual value.Value) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestToValuePrimitives(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    any
		expected value.Value
	}{
		{"nil", nil, value.Null},
		{"bool", true, value.Bool(true)},
		{"uint8", uint8(1), value.U8(1)},
		{"int", -1, value.I64(-1)},
		{"float32", float32(0.5), value.F32(0.5)},
		{"string", "s", value.String("s")},
		{"bytes", []byte("ab"), value.Bytes("ab")},
		{"byte array", [2]byte{1, 2}, value.Bytes{1, 2}},
		{"value", value.Char('c'), value.Char('c')},
		{"empty seq value", value.Seq(nil), value.Seq(nil)},
		{"nil pointer", (*int)(nil), value.Null},
		{"nil slice", []int(nil), value.Null},
		{"nil map", map[string]int(nil), value.Null},
		{"pointer", func() any { n := int16(3); return &n }(), value.I16(3)},
		{"pointer to variant", func() any { u := value.U8(1); return &u }(), value.U8(1)},
		{"text marshaler", netip.MustParseAddr("10.0.0.1"), value.String("10.0.0.1")},
		{"valuer", point{1, 2}, value.Seq{value.I64(1), value.I64(2)}},
		{"slice", []any{1, "a", nil}, value.Seq{value.I64(1), value.String("a"), value.Null}},
		{"array", [2]uint16{1, 2}, value.Seq{value.U16(1), value.U16(2)}},
		{
			"map",
			map[string]int8{"b": 2, "a": 1},
			value.NewMap(
				value.Entry{Key: value.String("a"), Value: value.I8(1)},
				value.Entry{Key: value.String("b"), Value: value.I8(2)},
			),
		},
		{
			"map with integer keys",
			map[uint8]bool{2: true, 1: false},
			value.NewMap(
				value.Entry{Key: value.U8(1), Value: value.Bool(false)},
				value.Entry{Key: value.U8(2), Value: value.Bool(true)},
			),
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			v, err := convert.ToValue(tc.input)
			require.NoError(tt, err)
			assertValue(tt, tc.expected, v)
		})
	}
}

func TestToValueStruct(t *testing.T) {
	t.Parallel()

	p := person{
		Base:    Base{ID: 7},
		Name:    "Ada",
		Tags:    []string{"x"},
		Avatar:  []byte{0xff},
		Scores:  map[string]int8{"go": 9},
		Manager: &person{Name: "Bob"},
		Extra:   map[string]string{"ignored": "yes"},
		secret:  "hidden",
	}

	v, err := convert.ToValue(p)
	require.NoError(t, err)

	manager := value.NewMap(
		value.Entry{Key: value.String("id"), Value: value.U32(0)},
		value.Entry{Key: value.String("name"), Value: value.String("Bob")},
		value.Entry{Key: value.String("tags"), Value: value.Null},
		value.Entry{Key: value.String("avatar"), Value: value.Null},
		value.Entry{Key: value.String("scores"), Value: value.Null},
		value.Entry{Key: value.String("manager"), Value: value.Null},
	)
	expected := value.NewMap(
		value.Entry{Key: value.String("id"), Value: value.U32(7)},
		value.Entry{Key: value.String("name"), Value: value.String("Ada")},
		value.Entry{Key: value.String("tags"), Value: value.Seq{value.String("x")}},
		value.Entry{Key: value.String("avatar"), Value: value.Bytes{0xff}},
		value.Entry{Key: value.String("scores"), Value: value.NewMap(value.Entry{Key: value.String("go"), Value: value.I8(9)})},
		value.Entry{Key: value.String("manager"), Value: manager},
	)
	assertValue(t, expected, v)
}

func TestToValueErrors(t *testing.T) {
	t.Parallel()

	cyclic := &person{Name: "loop"}
	cyclic.Manager = cyclic

	selfSeq := []any{nil}
	selfSeq[0] = selfSeq

	deepSeq := []any{1, nil}
	deepSeq[1] = map[string]any{"back": deepSeq}

	testcases := []struct {
		name  string
		input any
		err   string
	}{
		{"chan", make(chan int), "to value: unsupported type chan int"},
		{"func", func() {}, "to value: unsupported type func()"},
		{"complex", complex(1, 2), "to value: unsupported type complex128"},
		{"nested", map[string]any{"k": []any{1, make(chan bool)}}, "to value: at k[1]: unsupported type chan bool"},
		{"cycle", cyclic, `to value: at manager: circular reference to ""`},
		{"slice cycle", selfSeq, `to value: at [0]: circular reference to ""`},
		{"slice cycle through map", deepSeq, `to value: at [1].back: circular reference to ""`},
		{"valuer failure", []broken{{}}, "to value: at [0]: broken on purpose"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			v, err := convert.ToValue(tc.input)
			assert.Nil(tt, v)

			var convErr *convert.Error
			require.ErrorAs(tt, err, &convErr)
			assert.EqualError(tt, err, tc.err)
		})
	}
}

func TestToValueSharedSliceIsNotACycle(t *testing.T) {
	t.Parallel()

	shared := []any{int8(1)}
	v, err := convert.ToValue([]any{shared, shared, shared[:0]})
	require.NoError(t, err)

	inner := value.Seq{value.I8(1)}
	assertValue(t, value.Seq{inner, inner, value.Seq{}}, v)
}

func TestToValueUnwrapsValuerError(t *testing.T) {
	t.Parallel()

	_, err := convert.ToValue(broken{})
	assert.ErrorIs(t, err, errBroken)
}
