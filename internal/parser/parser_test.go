package parser_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/govalue/internal/literrors"
	"github.com/leonardinius/govalue/internal/parser"
	"github.com/leonardinius/govalue/internal/scanner"
	"github.com/leonardinius/govalue/internal/token"
	"github.com/leonardinius/govalue/value"
)

func parse(input string, bindings parser.Bindings) (value.Value, error) {
	tokens, err := scanner.NewScanner(input).Scan()
	if err != nil {
		return nil, err
	}
	return parser.NewParser(tokens, bindings).Parse()
}

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected value.Value
	}{
		{"null", `null`, value.Unit{}},
		{"true", `true`, value.Bool(true)},
		{"false", `false`, value.Bool(false)},
		{"default integer", `7`, value.I32(7)},
		{"default float", `7.5`, value.F64(7.5)},
		{"negative", `-7`, value.I32(-7)},
		{"i32 min", `-2147483648`, value.I32(math.MinInt32)},
		{"i64 min", `-9223372036854775808i64`, value.I64(math.MinInt64)},
		{"u8", `255u8`, value.U8(255)},
		{"u16 hex", `0xffffu16`, value.U16(math.MaxUint16)},
		{"u32 binary", `0b101u32`, value.U32(5)},
		{"u64 octal", `0o777u64`, value.U64(0o777)},
		{"hex digits are not a suffix", `0x1f32`, value.I32(0x1f32)},
		{"hex digits before a suffix", `0x1f32i64`, value.I64(0x1f32)},
		{"usize", `3usize`, value.U64(3)},
		{"isize", `-3isize`, value.I64(-3)},
		{"i8", `-128i8`, value.I8(math.MinInt8)},
		{"i16", `300i16`, value.I16(300)},
		{"f32", `1.5f32`, value.F32(1.5)},
		{"f32 from integer digits", `2f32`, value.F32(2)},
		{"negative f64", `-2.5e3`, value.F64(-2500)},
		{"char", `'λ'`, value.Char('λ')},
		{"string", `"hi"`, value.String("hi")},
		{"empty seq", `[]`, value.Seq{}},
		{"seq", `[1, "a", null]`, value.Seq{value.I32(1), value.String("a"), value.Null}},
		{"seq trailing comma", `[1,]`, value.Seq{value.I32(1)}},
		{"nested seq", `[[1, 2], [3]]`, value.Seq{value.Seq{value.I32(1), value.I32(2)}, value.Seq{value.I32(3)}}},
		{"seq holding one seq", `[[1, 2],]`, value.Seq{value.Seq{value.I32(1), value.I32(2)}}},
		{"bytes", `[[0, 1, 0xff]]`, value.Bytes{0, 1, 255}},
		{"bytes suffixed", `[[1u8, 2i64]]`, value.Bytes{1, 2}},
		{"bytes trailing comma", `[[1, 2,]]`, value.Bytes{1, 2}},
		{"empty bytes", `[[]]`, value.Bytes{}},
		{"seq of bytes", `[[[1]],]`, value.Seq{value.Bytes{1}}},
		{"empty map", `{}`, value.NewMap()},
		{
			"map",
			`{"b": 2, "a": [true]}`,
			value.NewMap(
				value.Entry{Key: value.String("a"), Value: value.Seq{value.Bool(true)}},
				value.Entry{Key: value.String("b"), Value: value.I32(2)},
			),
		},
		{
			"map duplicate key",
			`{"k": 1, "k": 2,}`,
			value.NewMap(value.Entry{Key: value.String("k"), Value: value.I32(2)}),
		},
		{
			"map composite keys",
			`{[1]: null, (2u8): {}, null: [[7]]}`,
			value.NewMap(
				value.Entry{Key: value.Seq{value.I32(1)}, Value: value.Null},
				value.Entry{Key: value.U8(2), Value: value.NewMap()},
				value.Entry{Key: value.Null, Value: value.Bytes{7}},
			),
		},
		{"grouping", `((3))`, value.I32(3)},
		{"comments", "[1, // one\n 2 /* two */]", value.Seq{value.I32(1), value.I32(2)}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			v, err := parse(tc.input, parser.Bindings{})
			require.NoError(tt, err)
			if diff := cmp.Diff(tc.expected, v, cmp.Comparer(value.Equal)); diff != "" {
				tt.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name   string
		input  string
		target error
		err    string
	}{
		{"empty", ``, literrors.ErrParseMissingValue, `parse error at end: missing value.`},
		{"missing map value", `{"a":}`, literrors.ErrParseMissingValue, `parse error at '}': missing value.`},
		{"missing map value before comma", `{"a":, "b": 1}`, literrors.ErrParseMissingValue, `parse error at ',': missing value.`},
		{"misplaced colon", `{: 1}`, literrors.ErrParseMisplacedColon, `parse error at ':': misplaced colon.`},
		{"comma inside key", `{"a", 1}`, literrors.ErrParseCommaInsideKey, `parse error at ',': comma inside key.`},
		{"key without colon", `{"a"}`, literrors.ErrParseExpectedColon, `parse error at '}': expect ':' after key.`},
		{"key followed by junk", `{"a" "b": 1}`, literrors.ErrParseUnexpectedToken, `parse error at '"b"': unexpected token.`},
		{"seq junk", `[1 2]`, literrors.ErrParseUnexpectedToken, `parse error at '2': unexpected token.`},
		{"map junk", `{"a": 1 "b": 2}`, literrors.ErrParseUnexpectedToken, `parse error at '"b"': unexpected token.`},
		{"unclosed seq", `[1,`, literrors.ErrParseExpectedRightBracket, `parse error at end: expect ']' after elements.`},
		{"unclosed map", `{"a": 1`, literrors.ErrParseExpectedRightBrace, `parse error at end: expect '}' after entries.`},
		{"unclosed group", `(1`, literrors.ErrParseExpectedRightParen, `parse error at end: expected ')' after expression.`},
		{"trailing input", `1 2`, literrors.ErrParseUnexpectedToken, `parse error at '2': unexpected token.`},
		{"leading comma", `[,]`, literrors.ErrParseExpectedExpression, `parse error at ',': expected expression.`},
		{"byte too large", `[[256]]`, literrors.ErrParseExpectedByte, `parse error at '256': expect byte value.`},
		{"byte negative", `[[-1]]`, literrors.ErrParseExpectedByte, `parse error at '-': expect byte value.`},
		{"byte string", `[["a"]]`, literrors.ErrParseExpectedByte, `parse error at '"a"': expect byte value.`},
		{"u8 overflow", `256u8`, literrors.ErrParseNumberOutOfRange, `literal out of range for U8.`},
		{"i32 overflow", `2147483648`, literrors.ErrParseNumberOutOfRange, `literal out of range for I32.`},
		{"i8 underflow", `-129i8`, literrors.ErrParseNumberOutOfRange, `literal out of range for I8.`},
		{"unknown suffix", `1u7`, literrors.ErrParseInvalidSuffix, `invalid literal suffix 'u7'.`},
		{"float with integer suffix", `1.5u8`, literrors.ErrParseFloatIntegerSuffix, `float literal with integer suffix.`},
		{"negated unsigned", `-1u8`, literrors.ErrParseUnsignedNegation, `unsigned literal cannot be negated.`},
		{"negated string", `-"a"`, literrors.ErrParseNegatedNonNumber, `only numbers can be negated.`},
		{"undefined name", `who`, literrors.ErrParseUndefinedName, `undefined name 'who'.`},
		{"argument out of range", `$1`, literrors.ErrParseArgumentIndex, `argument index out of range: $1 with 0 arguments.`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			v, err := parse(tc.input, parser.Bindings{})
			assert.Nil(tt, v)
			assert.ErrorIs(tt, err, tc.target)
			assert.ErrorContains(tt, err, tc.err)

			var parseErr *literrors.ParserError
			assert.ErrorAs(tt, err, &parseErr)
		})
	}
}

type level int

func TestParseBindings(t *testing.T) {
	t.Parallel()

	converted := []any{}
	bindings := parser.Bindings{
		Args: []any{uint16(5), nil, []byte{1}, value.Seq{value.Null}, struct{}{}, level(3)},
		Vars: map[string]any{"name": "x", "big": uint64(math.MaxUint64)},
		Convert: func(x any) (value.Value, error) {
			converted = append(converted, x)
			return value.String(fmt.Sprintf("%T", x)), nil
		},
	}

	v, err := parse(`{"a": $1, "b": $2, "c": $3, "d": $4, "e": $5, name: big, "f": [[$1]], "g": $6}`, bindings)
	require.NoError(t, err)

	expected := value.NewMap(
		value.Entry{Key: value.String("a"), Value: value.U16(5)},
		value.Entry{Key: value.String("b"), Value: value.Null},
		value.Entry{Key: value.String("c"), Value: value.Bytes{1}},
		value.Entry{Key: value.String("d"), Value: value.Seq{value.Null}},
		value.Entry{Key: value.String("e"), Value: value.String("struct {}")},
		value.Entry{Key: value.String("x"), Value: value.U64(math.MaxUint64)},
		value.Entry{Key: value.String("f"), Value: value.Bytes{5}},
		value.Entry{Key: value.String("g"), Value: value.String("parser_test.level")},
	)
	if diff := cmp.Diff(expected, v, cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []any{struct{}{}, level(3)}, converted)
}

func TestParseConversionFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	bindings := parser.Bindings{
		Args:    []any{struct{}{}},
		Convert: func(any) (value.Value, error) { return nil, cause },
	}

	v, err := parse(`[1, {"k": $1}]`, bindings)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, literrors.ErrParseConversion)
	assert.ErrorContains(t, err, `parse error at '$1': cannot convert to value: boom`)
}

func TestParseWithoutConverter(t *testing.T) {
	t.Parallel()

	_, err := parse(`$1`, parser.Bindings{Args: []any{struct{}{}}})
	assert.ErrorIs(t, err, literrors.ErrParseConversion)
}

func TestNewParserRequiresEOF(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { parser.NewParser(nil, parser.Bindings{}) })
	assert.Panics(t, func() {
		parser.NewParser([]token.Token{token.NewToken(token.NULL, "null", nil, 1)}, parser.Bindings{})
	})
}

func TestUndefinedNameListsDefinedNames(t *testing.T) {
	t.Parallel()

	_, err := parse(`{"a": nme}`, parser.Bindings{Vars: map[string]any{"name": 1, "age": 2}})
	assert.ErrorIs(t, err, literrors.ErrParseUndefinedName)
	assert.ErrorContains(t, err, `parse error at 'nme': undefined name 'nme', defined: age, name.`)
}
