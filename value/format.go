package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders v in literal syntax. The output parses back to an equal
// value, except for NaN and infinite floats which have no literal form.
func Format(v Value) string {
	out := new(strings.Builder)
	writeLiteral(out, orNull(v))
	return out.String()
}

// GoFormat renders v as the Go constructor expression that builds it.
func GoFormat(v Value) string {
	out := new(strings.Builder)
	writeGo(out, orNull(v))
	return out.String()
}

var intSuffix = map[Kind]string{
	U8Kind:  "u8",
	U16Kind: "u16",
	U32Kind: "u32",
	U64Kind: "u64",
	I8Kind:  "i8",
	I16Kind: "i16",
	I64Kind: "i64",
}

func writeLiteral(out *strings.Builder, v Value) {
	switch v := v.(type) {
	case Unit:
		_, _ = out.WriteString("null")
	case Bool:
		_, _ = out.WriteString(strconv.FormatBool(bool(v)))
	case U8, U16, U32, U64:
		n, _ := AsUint64(v)
		_, _ = out.WriteString(strconv.FormatUint(n, 10))
		_, _ = out.WriteString(intSuffix[v.Kind()])
	case I8, I16, I32, I64:
		n, _ := AsInt64(v)
		_, _ = out.WriteString(strconv.FormatInt(n, 10))
		_, _ = out.WriteString(intSuffix[v.Kind()])
	case F32:
		_, _ = out.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		_, _ = out.WriteString("f32")
	case F64:
		s := strconv.FormatFloat(float64(v), 'g', -1, 64)
		_, _ = out.WriteString(s)
		if !strings.ContainsAny(s, ".eIN") {
			_, _ = out.WriteString(".0")
		}
	case Char:
		_, _ = out.WriteString(strconv.QuoteRune(rune(v)))
	case String:
		_, _ = out.WriteString(strconv.Quote(string(v)))
	case Bytes:
		_, _ = out.WriteString("[[")
		for i, b := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			_, _ = fmt.Fprintf(out, "0x%02x", b)
		}
		_, _ = out.WriteString("]]")
	case Seq:
		_, _ = out.WriteString("[")
		for i, e := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			writeLiteral(out, orNull(e))
		}
		// [[...]] alone would read back as Bytes.
		if len(v) == 1 {
			if k := orNull(v[0]).Kind(); k == SeqKind || k == BytesKind {
				_, _ = out.WriteString(",")
			}
		}
		_, _ = out.WriteString("]")
	case Map:
		_, _ = out.WriteString("{")
		for i, e := range v.entries {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			writeLiteral(out, orNull(e.Key))
			_, _ = out.WriteString(": ")
			writeLiteral(out, orNull(e.Value))
		}
		_, _ = out.WriteString("}")
	}
}

func writeGo(out *strings.Builder, v Value) {
	switch v := v.(type) {
	case Unit:
		_, _ = out.WriteString("value.Unit{}")
	case Bool:
		_, _ = fmt.Fprintf(out, "value.Bool(%t)", bool(v))
	case U8, U16, U32, U64:
		n, _ := AsUint64(v)
		_, _ = fmt.Fprintf(out, "value.%s(%d)", v.Kind(), n)
	case I8, I16, I32, I64:
		n, _ := AsInt64(v)
		_, _ = fmt.Fprintf(out, "value.%s(%d)", v.Kind(), n)
	case F32:
		_, _ = fmt.Fprintf(out, "value.F32(%s)", strconv.FormatFloat(float64(v), 'g', -1, 32))
	case F64:
		_, _ = fmt.Fprintf(out, "value.F64(%s)", strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Char:
		_, _ = fmt.Fprintf(out, "value.Char(%s)", strconv.QuoteRune(rune(v)))
	case String:
		_, _ = fmt.Fprintf(out, "value.String(%s)", strconv.Quote(string(v)))
	case Bytes:
		_, _ = out.WriteString("value.Bytes{")
		for i, b := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			_, _ = fmt.Fprintf(out, "0x%02x", b)
		}
		_, _ = out.WriteString("}")
	case Seq:
		_, _ = out.WriteString("value.Seq{")
		for i, e := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			writeGo(out, orNull(e))
		}
		_, _ = out.WriteString("}")
	case Map:
		_, _ = out.WriteString("value.NewMap(")
		for i, e := range v.entries {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			_, _ = out.WriteString("value.Entry{Key: ")
			writeGo(out, orNull(e.Key))
			_, _ = out.WriteString(", Value: ")
			writeGo(out, orNull(e.Value))
			_, _ = out.WriteString("}")
		}
		_, _ = out.WriteString(")")
	}
}

// String implements fmt.Stringer.
func (v Unit) String() string   { return Format(v) }
func (v Bool) String() string   { return Format(v) }
func (v U8) String() string     { return Format(v) }
func (v U16) String() string    { return Format(v) }
func (v U32) String() string    { return Format(v) }
func (v U64) String() string    { return Format(v) }
func (v I8) String() string     { return Format(v) }
func (v I16) String() string    { return Format(v) }
func (v I32) String() string    { return Format(v) }
func (v I64) String() string    { return Format(v) }
func (v F32) String() string    { return Format(v) }
func (v F64) String() string    { return Format(v) }
func (v Char) String() string   { return Format(v) }
func (v String) String() string { return Format(v) }
func (v Bytes) String() string  { return Format(v) }
func (v Seq) String() string    { return Format(v) }
func (v Map) String() string    { return Format(v) }

// GoString implements fmt.GoStringer.
func (v Unit) GoString() string   { return GoFormat(v) }
func (v Bool) GoString() string   { return GoFormat(v) }
func (v U8) GoString() string     { return GoFormat(v) }
func (v U16) GoString() string    { return GoFormat(v) }
func (v U32) GoString() string    { return GoFormat(v) }
func (v U64) GoString() string    { return GoFormat(v) }
func (v I8) GoString() string     { return GoFormat(v) }
func (v I16) GoString() string    { return GoFormat(v) }
func (v I32) GoString() string    { return GoFormat(v) }
func (v I64) GoString() string    { return GoFormat(v) }
func (v F32) GoString() string    { return GoFormat(v) }
func (v F64) GoString() string    { return GoFormat(v) }
func (v Char) GoString() string   { return GoFormat(v) }
func (v String) GoString() string { return GoFormat(v) }
func (v Bytes) GoString() string  { return GoFormat(v) }
func (v Seq) GoString() string    { return GoFormat(v) }
func (v Map) GoString() string    { return GoFormat(v) }

var _ fmt.Stringer = Map{}
var _ fmt.GoStringer = Map{}
