// Package gen renders the code of an analyzed enumeration type.
//
// Generation uses text/template + go/format. For a type Mode with a 3-bit
// width the main file, mode_bitenum.go, contains:
//   - a compile-time guard pinning the value of every variant (or, for types
//     declared in a definition file, a re-declaration of the type and its
//     constants)
//   - Mode.RawValue, returning arbint.UInt[uint8, arbint.B3]
//   - NewModeWithRawValue, a switch over the variants' literal values
//
// Variants declared in files with build constraints are looked up through a
// helper generated into a file with the same constraint; a fallback file with
// the negated constraint declares the helper as reporting no match.
package gen
