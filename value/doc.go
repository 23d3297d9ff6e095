// Package value provides Value, a closed tagged union used as a neutral
// intermediate form between typed Go data and generic serialization code.
//
// A Value is exactly one of Unit, Bool, U8, U16, U32, U64, I8, I16, I32, I64,
// F32, F64, Char, String, Bytes, Seq or Map. Numeric widths are preserved:
// a value built from a uint8 stays a U8.
//
// Two kinds of equality are offered. Equal compares two Values structurally,
// so U8(5) and I32(5) differ. Equals and the EqualSigned, EqualUnsigned,
// EqualFloat, EqualBool and EqualString helpers compare a Value against a
// native primitive by projecting the Value into a 64-bit canonical form,
// so both U8(5) and I32(5) equal the native 5. Projections are 64 bits wide;
// comparisons outside that range lose precision.
//
// Values are immutable once built and safe for concurrent reads.
package value
