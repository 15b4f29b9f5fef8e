package config

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"bitenum-generator/internal/match"
	"bitenum-generator/utils"
)

// Bit width bounds accepted in a width-spec.
const (
	MinBits = 1
	MaxBits = 64
)

const syntaxExample = Directive + " u3, exhaustive: false"

var (
	ErrMissingWidth       = errors.New("bit width argument needed, for example " + syntaxExample)
	ErrInvalidWidth       = errors.New("unsupported bit width, supported: u1, u2, u3, .., u64")
	ErrDuplicateArgument  = errors.New("argument must only be specified at most once")
	ErrUnexpectedArgument = errors.New("unexpected argument, supported: u1, u2, u3, .., u64 and 'exhaustive'")
	ErrUnexpectedToken    = errors.New("unexpected token, example of valid syntax: " + syntaxExample)
	ErrMissingValue       = errors.New(`"exhaustive" needs a value`)
)

// Parse parses the argument text of a directive, e.g. "u3, exhaustive: false".
//
// Scan rule: a comma ends a pending "exhaustive" value, a colon is skipped,
// any other operator fails. Every token following "exhaustive" is captured
// as its value until the next comma; the last one wins.
func Parse(args string) (Config, error) {
	var (
		cfg            Config
		seenWidth      bool
		seenExhaustive bool
		awaiting       bool
		value          string
		hasValue       bool
		scanErr        error
	)

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(args))

	var s scanner.Scanner
	s.Init(file, []byte(args), func(_ token.Position, msg string) {
		if scanErr == nil {
			scanErr = fmt.Errorf("%w: %s", ErrUnexpectedToken, msg)
		}
	}, 0)

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		switch {
		case tok == token.SEMICOLON && lit == "\n":
			// inserted by the scanner at the end of the input
		case tok == token.COMMA:
			awaiting = false
		case tok == token.COLON:
		case tok.IsOperator() || tok == token.ILLEGAL:
			return Config{}, fmt.Errorf("%w: expected ',' or ':', seen %q", ErrUnexpectedToken, tokenText(tok, lit))
		case awaiting:
			value, hasValue = tokenText(tok, lit), true
		case tok == token.IDENT && lit == "exhaustive":
			if seenExhaustive {
				return Config{}, fmt.Errorf("%w: exhaustive", ErrDuplicateArgument)
			}

			seenExhaustive, awaiting = true, true
		case tok == token.IDENT:
			bits, err := parseWidth(lit)
			if err != nil {
				return Config{}, err
			}

			if seenWidth {
				return Config{}, fmt.Errorf("%w: bit width (u%d and %s)", ErrDuplicateArgument, cfg.Bits, lit)
			}

			cfg.Bits, seenWidth = bits, true
		case tok.IsLiteral():
			return Config{}, fmt.Errorf("%w: seen %s, but didn't expect anything", ErrUnexpectedToken, lit)
		default:
			return Config{}, fmt.Errorf("%w: seen %s", ErrUnexpectedToken, tokenText(tok, lit))
		}
	}

	if scanErr != nil {
		return Config{}, scanErr
	}

	if !seenWidth {
		return Config{}, ErrMissingWidth
	}

	if seenExhaustive {
		if !hasValue {
			return Config{}, ErrMissingValue
		}

		e, err := ParseExhaustiveness(value)
		if err != nil {
			return Config{}, err
		}

		cfg.Exhaustive = e
	}

	return cfg, nil
}

// parseWidth accepts "u" followed by a decimal in [MinBits, MaxBits].
func parseWidth(ident string) (int, error) {
	digits, ok := strings.CutPrefix(ident, "u")
	if !ok || !utils.IsDecimal(digits) {
		return 0, fmt.Errorf("%w: %s%s", ErrUnexpectedArgument, ident, match.Hint(ident, []string{"exhaustive"}))
	}

	bits, err := strconv.Atoi(digits)
	if err != nil || !utils.IsInRange(MinBits, bits, MaxBits) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWidth, ident)
	}

	return bits, nil
}

func tokenText(tok token.Token, lit string) string {
	if lit != "" {
		return lit
	}

	return tok.String()
}
