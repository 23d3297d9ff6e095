// Package literal builds value.Value trees from a JSON-like literal syntax.
//
//	null                       Unit
//	true, false                Bool
//	[e1, e2, ...]              Seq, elements in source order
//	[[b1, b2, ...]]            Bytes
//	{k1: v1, k2: v2, ...}      Map, a later duplicate key wins
//	(v)                        v, useful to set off a key
//
// Numbers take an optional width suffix: 7u8, 0xffu16, -3i64, 1.5f32,
// 0.01_f64. Unsuffixed integers are I32 and unsuffixed floats F64. Strings
// and characters use Go quoting: "text", `raw`, 'c'.
//
// Anything else is bound from Go: $1, $2, ... refer to positional
// arguments and bare identifiers to named variables. Native primitives map
// to the Value of the same width; other values go through the converter,
// convert.ToValue unless replaced with WithConverter.
//
//	v, err := literal.Of(`{"id": $1, "tags": [$2, "x"], "raw": [[0x01, 0xff]]}`, uint32(43), "y")
package literal
