// Package record defines the structured value that roundtrip serializes.
//
// A [Record] is an ordered mapping with two entries: a timestamp under key
// "a" and a nested mapping under key "b". The nested mapping holds an
// integer under "c" and a two-element string sequence under "d":
//
//	a: 2026-10-18T09:41:07.123456789+02:00
//	b:
//	  c: 2
//	  d:
//	    - d
//	    - e
//
// Struct field order fixes key order in every codec's output.
//
// # Equality
//
// Textual formats store timestamps at a fixed precision, so [Record.Equal]
// takes a precision argument and compares timestamps after truncating both
// sides. A precision of zero compares exact instants.
package record
