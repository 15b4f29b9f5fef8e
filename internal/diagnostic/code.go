package diagnostic

//go:generate go tool stringer -type=Code -linecomment -output=code_string.go

// Code identifies a kind of diagnostic.
type Code int

const (
	_ Code = iota

	CodeInvalidDirective     // invalid-directive
	CodeIgnoredDirective     // ignored-directive
	CodeUnsupportedType      // unsupported-type
	CodeMissingDiscriminant  // missing-discriminant
	CodeInvalidDiscriminant  // invalid-discriminant
	CodeDiscriminantOverflow // discriminant-overflow
	CodeConditionalMismatch  // conditional-mismatch
	CodeMissingVariants      // missing-variants
	CodeNotMarkedExhaustive  // not-marked-exhaustive
	CodeMixedDefinition      // mixed-definition
)
