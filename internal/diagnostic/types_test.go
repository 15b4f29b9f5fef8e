package diagnostic

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(file string, line int) token.Position {
	return token.Position{Filename: file, Line: line, Column: 2}
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    *Diagnostic
		want string
	}{
		{
			name: "variant",
			d:    Errorf(CodeDiscriminantOverflow, pos("mode.go", 12), "Mode", "C", "value of %s exceeds the given number of bits", "C"),
			want: "mode.go:12:2: Mode.C: [discriminant-overflow] value of C exceeds the given number of bits",
		},
		{
			name: "type",
			d:    Errorf(CodeMissingVariants, pos("mode.go", 3), "Mode", "", "type is marked as exhaustive, but it is missing variants"),
			want: "mode.go:3:2: Mode: [missing-variants] type is marked as exhaustive, but it is missing variants",
		},
		{
			name: "no position",
			d:    Errorf(CodeInvalidDirective, token.Position{}, "", "", "bad"),
			want: "[invalid-directive] bad",
		},
		{
			name: "no code",
			d:    &Diagnostic{Message: "plain"},
			want: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
			assert.Equal(t, tt.want, tt.d.Error())
		})
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("unsupported bit width")
	d := Wrap(CodeInvalidDirective, pos("mode.go", 1), "Mode", cause)

	assert.ErrorIs(t, d, cause)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "unsupported bit width", d.Message)
}

func TestDiagnostics_AddAndError(t *testing.T) {
	var ds Diagnostics
	assert.False(t, ds.HasErrors())
	assert.NoError(t, ds.Error())

	ds.AddWarning(CodeIgnoredDirective, pos("a.go", 4), "", "directive on %s is ignored", "f")
	assert.False(t, ds.HasErrors())
	require.Len(t, ds.Warnings, 1)
	assert.Equal(t, SeverityWarning, ds.Warnings[0].Severity)

	first := Errorf(CodeMissingDiscriminant, pos("a.go", 9), "Mode", "B", "variant B needs to have a value")
	ds.AddError(first)
	assert.Same(t, first, ds.Error())

	ds.AddError(errors.New("plain failure"))
	require.Len(t, ds.Errors, 2)
	assert.Equal(t, SeverityError, ds.Errors[1].Severity)
	assert.Equal(t, "a.go:9:2: Mode.B: [missing-discriminant] variant B needs to have a value\nplain failure", ds.Error().Error())
}

func TestDiagnostics_MergeAndSort(t *testing.T) {
	var a, b Diagnostics

	a.Add(Errorf(CodeMissingVariants, pos("b.go", 1), "B", "", "b1"))
	a.Add(Errorf(CodeMissingVariants, pos("a.go", 7), "A", "", "a7"))
	b.Add(Errorf(CodeMissingVariants, pos("a.go", 3), "A", "", "a3"))
	b.Add(&Diagnostic{Severity: SeverityWarning, Message: "w"})

	a.Merge(b)
	a.Sort()

	var messages []string
	for _, d := range a.Errors {
		messages = append(messages, d.Message)
	}

	assert.Equal(t, []string{"a3", "a7", "b1"}, messages)
	assert.Len(t, a.Warnings, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.NotEmpty(t, Severity(7).String())
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "conditional-mismatch", CodeConditionalMismatch.String())
	assert.Equal(t, "mixed-definition", CodeMixedDefinition.String())
}
