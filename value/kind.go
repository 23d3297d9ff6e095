package value

import "fmt"

// Kind identifies the variant held by a Value.
//
// Kinds are declared in the order used to sort values of different variants.
type Kind uint

const (
	UnitKind Kind = iota
	BoolKind
	U8Kind
	U16Kind
	U32Kind
	U64Kind
	I8Kind
	I16Kind
	I32Kind
	I64Kind
	F32Kind
	F64Kind
	CharKind
	StringKind
	BytesKind
	SeqKind
	MapKind
)

var kindNames = [...]string{
	UnitKind:   "Unit",
	BoolKind:   "Bool",
	U8Kind:     "U8",
	U16Kind:    "U16",
	U32Kind:    "U32",
	U64Kind:    "U64",
	I8Kind:     "I8",
	I16Kind:    "I16",
	I32Kind:    "I32",
	I64Kind:    "I64",
	F32Kind:    "F32",
	F64Kind:    "F64",
	CharKind:   "Char",
	StringKind: "String",
	BytesKind:  "Bytes",
	SeqKind:    "Seq",
	MapKind:    "Map",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint(k))
}

func (k Kind) IsSigned() bool   { return k >= I8Kind && k <= I64Kind }
func (k Kind) IsUnsigned() bool { return k >= U8Kind && k <= U64Kind }
func (k Kind) IsInteger() bool  { return k.IsSigned() || k.IsUnsigned() }
func (k Kind) IsFloat() bool    { return k == F32Kind || k == F64Kind }

var _ fmt.Stringer = Kind(0)
