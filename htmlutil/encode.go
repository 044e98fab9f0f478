package htmlutil

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// EncodeCharForASCII returns r in a form that is safe inside a single quoted
// string literal and only uses printable ASCII.
//
// Printable ASCII (32 to 126) is returned as is, except for the quote and
// the backslash which get a backslash prefix. Newline, carriage return and
// tab use their short escapes. Everything else becomes \uXXXX; runes outside
// the Basic Multilingual Plane are written as a surrogate pair.
func EncodeCharForASCII(r rune) string {
	switch {
	case r == '\'':
		return `\'`
	case r == '\\':
		return `\\`
	case r >= 32 && r <= 126:
		return string(r)
	case r == '\n':
		return `\n`
	case r == '\r':
		return `\r`
	case r == '\t':
		return `\t`
	case r > 0xFFFF && r <= 0x10FFFF:
		hi, lo := utf16.EncodeRune(r)
		return fmt.Sprintf(`\u%04x\u%04x`, hi, lo)
	default:
		return fmt.Sprintf(`\u%04x`, r)
	}
}

// EncodeStringForASCII applies EncodeCharForASCII to every rune of s.
func EncodeStringForASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(EncodeCharForASCII(r))
	}
	return b.String()
}
