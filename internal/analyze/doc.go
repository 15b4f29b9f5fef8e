// Package analyze finds annotated enumeration types and checks their
// variants.
//
// It lists package files with golang.org/x/tools/go/packages, including the
// files excluded by build constraints, and parses them with go/parser so
// that conditionally compiled variants are visible.
//
// Key types:
//   - EnumDescriptor: an annotated type and the constants declared with it
//   - Variant: one constant, its discriminant and its build constraint
//   - Analysis: the checked variants plus the derived reconstruction mode
package analyze
