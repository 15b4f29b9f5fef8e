package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() fallback of enumerations.
const UnknownStr = "unknown"

// SnakeCase converts a Go identifier to snake_case, keeping acronyms
// together: "HTTPMode" -> "http_mode", "ModeA" -> "mode_a".
func SnakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}

// UpperFirst upper-cases the first letter of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first letter of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
