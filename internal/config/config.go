package config

import (
	"errors"
	"fmt"
	"strings"

	"bitenum-generator/internal/match"
)

//go:generate go tool stringer -type=Exhaustiveness -linecomment -output=exhaustiveness_string.go

// Exhaustiveness tells whether every raw value of the width maps to a variant.
type Exhaustiveness int

const (
	ExhaustiveFalse       Exhaustiveness = iota // false
	ExhaustiveTrue                              // true
	ExhaustiveConditional                       // conditional
)

// Directive is the comment prefix that marks a type for expansion.
const Directive = "//bitenum:enum"

// Config is the parsed argument list of a directive.
type Config struct {
	// Bits is the width of the packed representation, 1..64.
	Bits int
	// Exhaustive defaults to ExhaustiveFalse when not given.
	Exhaustive Exhaustiveness
}

// String renders c in directive syntax.
func (c Config) String() string {
	return fmt.Sprintf("u%d, exhaustive: %s", c.Bits, c.Exhaustive)
}

var errUnknownExhaustiveness = errors.New(`"exhaustive" must be "true", "false" or "conditional"`)

// ParseExhaustiveness matches the textual form of an exhaustiveness value.
func ParseExhaustiveness(s string) (Exhaustiveness, error) {
	for e := ExhaustiveFalse; e <= ExhaustiveConditional; e++ {
		if e.String() == s {
			return e, nil
		}
	}

	var names []string
	for e := ExhaustiveFalse; e <= ExhaustiveConditional; e++ {
		names = append(names, e.String())
	}

	return 0, fmt.Errorf("%w, seen %s%s", errUnknownExhaustiveness, s, match.Hint(s, names))
}

// MarshalYAML implements yaml.Marshaler.
func (e Exhaustiveness) MarshalYAML() (any, error) {
	return e.String(), nil
}

// ParseDirective returns the argument text of a directive comment line.
// ok is false when line is not a directive.
func ParseDirective(line string) (args string, ok bool) {
	rest, found := strings.CutPrefix(line, Directive)
	if !found {
		return "", false
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// e.g. "//bitenum:enumeration"
		return "", false
	}

	return strings.TrimSpace(rest), true
}
