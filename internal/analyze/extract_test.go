package analyze

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitenum-generator/internal/diagnostic"
)

func extractSources(t *testing.T, sources map[string]string) ([]*EnumDescriptor, diagnostic.Diagnostics) {
	t.Helper()

	pkg, err := NewLoader("", nil).ParseSources("example.com/p", sources)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics
	enums := Extract(pkg, &diags)

	return enums, diags
}

func TestExtract_Basic(t *testing.T) {
	enums, diags := extractSources(t, map[string]string{"mode.go": `package p

// Mode is a mode.
//bitenum:enum u3, exhaustive: false
type Mode uint8

// Not annotated.
type Other uint8

const (
	// A is the first one.
	A Mode = 0
	B Mode = 1 // second
	C Mode = 0x7

	X Other = 3
)

const Lone Mode = 4
`})
	require.False(t, diags.HasErrors())
	require.Len(t, enums, 1)

	e := enums[0]
	assert.Equal(t, "Mode", e.Name)
	assert.True(t, e.Exported)
	assert.Equal(t, "uint8", e.Underlying)
	assert.Equal(t, "u3, exhaustive: false", e.Directive)
	assert.Equal(t, []string{"// Mode is a mode."}, e.Doc)
	assert.Equal(t, "p", e.Package)
	assert.Equal(t, 5, e.Pos.Line)

	require.Len(t, e.Variants, 4, spew.Sdump(e.Variants))

	names := make([]string, 0, len(e.Variants))
	for _, v := range e.Variants {
		names = append(names, v.Name)
	}

	assert.Equal(t, []string{"A", "B", "C", "Lone"}, names)
	assert.Equal(t, []string{"// A is the first one."}, e.Variants[0].Doc)
	assert.Equal(t, "// second", e.Variants[1].Comment)
	assert.Equal(t, "0x7", e.Variants[2].ExprText())
	assert.False(t, e.Variants[2].Conditional())
}

func TestExtract_ImplicitRepetitionHasNoDiscriminant(t *testing.T) {
	enums, _ := extractSources(t, map[string]string{"mode.go": `package p

//bitenum:enum u2
type Mode uint8

const (
	A Mode = iota
	B
	_
	C
)
`})
	require.Len(t, enums, 1)
	require.Len(t, enums[0].Variants, 3)

	assert.NotNil(t, enums[0].Variants[0].Expr)
	assert.Nil(t, enums[0].Variants[1].Expr)
	assert.Equal(t, "C", enums[0].Variants[2].Name)
	assert.Nil(t, enums[0].Variants[2].Expr)
}

func TestExtract_ConversionForm(t *testing.T) {
	enums, _ := extractSources(t, map[string]string{"mode.go": `package p

//bitenum:enum u2
type Mode uint8

const (
	A = Mode(0b10)
	B = uint8(1)
	C = Other(1)
)
`})
	require.Len(t, enums, 1)
	require.Len(t, enums[0].Variants, 1)

	assert.Equal(t, "A", enums[0].Variants[0].Name)
	assert.Equal(t, "0b10", enums[0].Variants[0].ExprText())
}

func TestExtract_TypeAttributes(t *testing.T) {
	enums, _ := extractSources(t, map[string]string{"mode.go": `package p

type (
	//bitenum:enum u2
	alias = uint8

	//bitenum:enum u2
	generic[T any] uint8

	//bitenum:enum u2
	signed int8
)
`})
	require.Len(t, enums, 3)

	assert.True(t, enums[0].Alias)
	assert.False(t, enums[0].Exported)
	assert.True(t, enums[1].Generic)
	assert.Equal(t, "int8", enums[2].Underlying)
}

func TestExtract_Markers(t *testing.T) {
	enums, _ := extractSources(t, map[string]string{
		"mode.go": `package p

//bitenum:enum u2, exhaustive: conditional
type Mode uint8

const A Mode = 0
`,
		"mode_extra.go": `//go:build linux && amd64

package p

const B Mode = 1
`,
	})
	require.Len(t, enums, 1)
	require.Len(t, enums[0].Variants, 2)

	assert.Empty(t, enums[0].Variants[0].Markers)
	assert.Equal(t, []string{"linux && amd64"}, enums[0].Variants[1].Markers)
	assert.Equal(t, "linux && amd64", enums[0].Variants[1].Marker())
}

func TestExtract_DefinitionFile(t *testing.T) {
	enums, _ := extractSources(t, map[string]string{
		"mode_def.go": `//go:build bitenum

package p

//bitenum:enum u2
type Mode uint8

const A Mode = 0
`,
		"mode_def_arm.go": `//go:build bitenum && arm

package p

const B Mode = 1
`,
	})
	require.Len(t, enums, 1)
	assert.True(t, enums[0].Definition)

	require.Len(t, enums[0].Variants, 2)
	assert.True(t, enums[0].Variants[0].Definition)
	assert.Empty(t, enums[0].Variants[0].Markers)
	assert.True(t, enums[0].Variants[1].Definition)
	assert.Equal(t, "arm", enums[0].Variants[1].Marker())
}

func TestExtract_DirectiveErrors(t *testing.T) {
	enums, diags := extractSources(t, map[string]string{"mode.go": `package p

//bitenum:enum u2
//bitenum:enum u3
type Twice uint8

//bitenum:enum u2
type Mode uint8

//bitenum:enum u2
const A Mode = 0

//bitenum:enum u2
func f() {}

//bitenum:enumeration u2
type NotADirective uint8
`})
	require.Len(t, enums, 1)
	assert.Equal(t, "Mode", enums[0].Name)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidDirective, diags.Errors[0].Code)
	assert.Equal(t, "Twice", diags.Errors[0].Enum)

	require.Len(t, diags.Warnings, 2)
	for _, w := range diags.Warnings {
		assert.Equal(t, diagnostic.CodeIgnoredDirective, w.Code)
	}
}

func TestExtract_AnnotatedTwice(t *testing.T) {
	enums, diags := extractSources(t, map[string]string{
		"a.go": "package p\n\n//bitenum:enum u2\ntype Mode uint8\n",
		"b.go": "//go:build arm\n\npackage p\n\n//bitenum:enum u3\ntype Mode uint8\n",
	})
	require.Len(t, enums, 1)
	assert.Equal(t, "u2", enums[0].Directive)

	require.Len(t, diags.Errors, 1)
	assert.Contains(t, diags.Errors[0].Message, "more than once")
}
