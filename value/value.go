package value

// Value is a self-describing dynamically typed value.
//
// The set of implementations is closed: only the variant types declared in
// this package satisfy Value.
type Value interface {
	Kind() Kind
	value()
}

type (
	// Unit is the absence of a value.
	Unit struct{}
	Bool bool
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	F32  float32
	F64  float64
	// Char is a single Unicode scalar value.
	Char   rune
	String string
	// Bytes owns its binary payload; constructors copy.
	Bytes []byte
	// Seq is an ordered sequence of values.
	Seq []Value
)

// Null is the Unit value.
var Null Value = Unit{}

func (Unit) Kind() Kind   { return UnitKind }
func (Bool) Kind() Kind   { return BoolKind }
func (U8) Kind() Kind     { return U8Kind }
func (U16) Kind() Kind    { return U16Kind }
func (U32) Kind() Kind    { return U32Kind }
func (U64) Kind() Kind    { return U64Kind }
func (I8) Kind() Kind     { return I8Kind }
func (I16) Kind() Kind    { return I16Kind }
func (I32) Kind() Kind    { return I32Kind }
func (I64) Kind() Kind    { return I64Kind }
func (F32) Kind() Kind    { return F32Kind }
func (F64) Kind() Kind    { return F64Kind }
func (Char) Kind() Kind   { return CharKind }
func (String) Kind() Kind { return StringKind }
func (Bytes) Kind() Kind  { return BytesKind }
func (Seq) Kind() Kind    { return SeqKind }
func (Map) Kind() Kind    { return MapKind }

func (Unit) value()   {}
func (Bool) value()   {}
func (U8) value()     {}
func (U16) value()    {}
func (U32) value()    {}
func (U64) value()    {}
func (I8) value()     {}
func (I16) value()    {}
func (I32) value()    {}
func (I64) value()    {}
func (F32) value()    {}
func (F64) value()    {}
func (Char) value()   {}
func (String) value() {}
func (Bytes) value()  {}
func (Seq) value()    {}
func (Map) value()    {}

var (
	_ Value = Unit{}
	_ Value = Bool(false)
	_ Value = U8(0)
	_ Value = U16(0)
	_ Value = U32(0)
	_ Value = U64(0)
	_ Value = I8(0)
	_ Value = I16(0)
	_ Value = I32(0)
	_ Value = I64(0)
	_ Value = F32(0)
	_ Value = F64(0)
	_ Value = Char(0)
	_ Value = String("")
	_ Value = Bytes(nil)
	_ Value = Seq(nil)
	_ Value = Map{}
)
