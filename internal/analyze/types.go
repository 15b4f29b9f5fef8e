package analyze

import (
	"go/ast"
	"go/token"

	"bitenum-generator/internal/config"
	"bitenum-generator/internal/width"
)

// EnumDescriptor describes an annotated type and its variants as declared in
// source.
type EnumDescriptor struct {
	Name       string         // e.g. "Mode"
	Exported   bool           // Whether the type name is exported
	Underlying string         // Declared underlying type, e.g. "uint8"
	Alias      bool           // Declared as an alias (type X = Y)
	Generic    bool           // Declared with type parameters
	Doc        []string       // Doc comment lines (directive excluded)
	Directive  string         // Directive arguments, e.g. "u3, exhaustive: false"
	Definition bool           // Declared in a definition file
	Marker     string         // Build constraint of the declaring file
	Package    string         // Package name
	PkgPath    string         // Package import path
	Dir        string         // Package directory
	Pos        token.Position // Position of the type name
	Variants   []Variant      // In declaration order
}

// Variant is one constant of an annotated type.
type Variant struct {
	Name       string
	Expr       ast.Expr // Discriminant; nil when the constant has none
	Value      uint64   // Set by Analyze
	Markers    []string // Build constraints guarding the declaration
	Definition bool     // Declared in a definition file
	Doc        []string // Doc comment lines
	Comment    string   // Trailing line comment
	Pos        token.Position
}

// ExprText returns the discriminant as written in source.
func (v *Variant) ExprText() string {
	if lit, ok := v.Expr.(*ast.BasicLit); ok {
		return lit.Value
	}

	if v.Expr == nil {
		return ""
	}

	return exprString(v.Expr)
}

// Conditional reports whether the variant is guarded by a build constraint.
func (v *Variant) Conditional() bool {
	return len(v.Markers) > 0
}

// Marker returns the build constraint guarding the variant, "" if none.
func (v *Variant) Marker() string {
	if len(v.Markers) == 0 {
		return ""
	}

	return joinMarkers(v.Markers)
}

// ConditionGroup gathers the variants guarded by one build constraint.
type ConditionGroup struct {
	Marker   string
	Variants []Variant
}

// Analysis is the result of checking an EnumDescriptor against its
// configuration.
type Analysis struct {
	Enum    *EnumDescriptor
	Config  config.Config
	Profile width.Profile
	// Variants holds every variant with Value set, in declaration order.
	Variants []Variant
	// UsesConditional is true when any variant carries a build constraint.
	UsesConditional bool
	// Fallible is true unless the type is exhaustive; reconstruction then
	// reports unmapped raw values instead of panicking.
	Fallible bool
	// Groups lists the conditional variants by constraint, in order of
	// first appearance.
	Groups []ConditionGroup
}

// Unconditional returns the variants without a build constraint.
func (a *Analysis) Unconditional() []Variant {
	var res []Variant
	for _, v := range a.Variants {
		if !v.Conditional() {
			res = append(res, v)
		}
	}

	return res
}
