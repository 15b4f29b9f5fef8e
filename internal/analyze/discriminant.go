package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

var (
	ErrNotLiteral = errors.New("not an unsigned integer literal")
	ErrTooLarge   = errors.New("integer literal does not fit into 64 bits")
)

// ParseDiscriminant returns the value of an integer literal expression.
// Any other expression, including references to constants and arithmetic,
// yields ErrNotLiteral.
func ParseDiscriminant(expr ast.Expr) (uint64, error) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, ErrNotLiteral
	}

	return ParseLiteral(lit.Value)
}

// ParseLiteral parses the text of a Go integer literal: decimal, 0x, 0b, 0o
// or legacy leading-zero octal, with optional '_' digit separators.
func ParseLiteral(text string) (uint64, error) {
	s := strings.ReplaceAll(text, "_", "")

	base, digits := 10, s
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, digits = 16, s[2:]
		case 'b', 'B':
			base, digits = 2, s[2:]
		case 'o', 'O':
			base, digits = 8, s[2:]
		default:
			base, digits = 8, s[1:]
		}
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: %s", ErrNotLiteral, text)
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrTooLarge, text)
		}

		return 0, fmt.Errorf("%w: %s", ErrNotLiteral, text)
	}

	return v, nil
}
