package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		args string
		want Config
	}{
		{"u3", Config{Bits: 3, Exhaustive: ExhaustiveFalse}},
		{"u1, exhaustive: true", Config{Bits: 1, Exhaustive: ExhaustiveTrue}},
		{"u5, exhaustive: conditional", Config{Bits: 5, Exhaustive: ExhaustiveConditional}},
		{"u64, exhaustive: false", Config{Bits: 64, Exhaustive: ExhaustiveFalse}},
		{"exhaustive: true, u2", Config{Bits: 2, Exhaustive: ExhaustiveTrue}},
		{"u08", Config{Bits: 8}},
		{"u7 exhaustive: true", Config{Bits: 7, Exhaustive: ExhaustiveTrue}},
		{"u7,exhaustive:true", Config{Bits: 7, Exhaustive: ExhaustiveTrue}},
		// every token up to the next comma is captured, the last one wins
		{"u4, exhaustive: false true", Config{Bits: 4, Exhaustive: ExhaustiveTrue}},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			got, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		args string
		want error
	}{
		{"", ErrMissingWidth},
		{"exhaustive: true", ErrMissingWidth},
		{"u0", ErrInvalidWidth},
		{"u65", ErrInvalidWidth},
		{"u123456789012345678901234567890", ErrInvalidWidth},
		{"i8", ErrUnexpectedArgument},
		{"u", ErrUnexpectedArgument},
		{"u3x", ErrUnexpectedArgument},
		{"u3, u4", ErrDuplicateArgument},
		{"u3, exhaustive: true, exhaustive: false", ErrDuplicateArgument},
		{"u3, exhaustive, exhaustive: true", ErrDuplicateArgument},
		{"u3, exhaustive", ErrMissingValue},
		{"u3, exhaustive:", ErrMissingValue},
		{"u3, true", ErrUnexpectedArgument},
		{"u3, 5", ErrUnexpectedToken},
		{"u3; exhaustive: true", ErrUnexpectedToken},
		{"u3, exhaustive = true", ErrUnexpectedToken},
		{"u3, exhaustive: $", ErrUnexpectedToken},
		{"u3, func", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_ExhaustiveValueIsMatchedVerbatim(t *testing.T) {
	_, err := Parse(`u3, exhaustive: "true"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownExhaustiveness)

	_, err = Parse("u3, exhaustive: TRUE")
	assert.ErrorIs(t, err, errUnknownExhaustiveness)

	_, err = Parse("u3, exhaustive: 1")
	assert.ErrorIs(t, err, errUnknownExhaustiveness)
}

func TestParseDirective(t *testing.T) {
	args, ok := ParseDirective("//bitenum:enum u3, exhaustive: false")
	assert.True(t, ok)
	assert.Equal(t, "u3, exhaustive: false", args)

	args, ok = ParseDirective("//bitenum:enum")
	assert.True(t, ok)
	assert.Empty(t, args)

	_, ok = ParseDirective("//bitenum:enumeration u3")
	assert.False(t, ok)

	_, ok = ParseDirective("// bitenum:enum u3")
	assert.False(t, ok)
}

func TestExhaustiveness_String(t *testing.T) {
	assert.Equal(t, "false", ExhaustiveFalse.String())
	assert.Equal(t, "true", ExhaustiveTrue.String())
	assert.Equal(t, "conditional", ExhaustiveConditional.String())
	assert.Equal(t, "Exhaustiveness(7)", Exhaustiveness(7).String())

	assert.Equal(t, "u3, exhaustive: conditional", Config{Bits: 3, Exhaustive: ExhaustiveConditional}.String())
}

func TestParse_Hints(t *testing.T) {
	_, err := Parse("u3, exhaustiv: true")
	require.ErrorIs(t, err, ErrUnexpectedArgument)
	assert.Contains(t, err.Error(), "did you mean exhaustive?")

	_, err = Parse("u3, exhaustive: TRUE")
	require.ErrorIs(t, err, errUnknownExhaustiveness)
	assert.Contains(t, err.Error(), "did you mean true?")

	_, err = Parse("i8")
	require.ErrorIs(t, err, ErrUnexpectedArgument)
	assert.NotContains(t, err.Error(), "did you mean")
}
