package htmlutil

// IsHTMLSpace reports whether r separates tokens in HTML.
// U+200B (zero width space) is included.
func IsHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\u200B':
		return true
	}
	return false
}

// IsJavascriptWhitespace reports whether r is JavaScript whitespace or a
// line terminator.
func IsJavascriptWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00A0', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsJavascriptIdentifier reports whether r may appear in an identifier or
// keyword. Only ASCII is recognised.
func IsJavascriptIdentifier(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' || r == '$'
}

// regexpPrefixes are the keywords after which a '/' starts a regular
// expression literal rather than a division.
var regexpPrefixes = map[string]struct{}{
	"abstract":     {},
	"break":        {},
	"case":         {},
	"catch":        {},
	"class":        {},
	"const":        {},
	"continue":     {},
	"debugger":     {},
	"default":      {},
	"delete":       {},
	"do":           {},
	"else":         {},
	"enum":         {},
	"eval":         {},
	"export":       {},
	"extends":      {},
	"field":        {},
	"final":        {},
	"finally":      {},
	"for":          {},
	"function":     {},
	"goto":         {},
	"if":           {},
	"implements":   {},
	"import":       {},
	"in":           {},
	"instanceof":   {},
	"native":       {},
	"new":          {},
	"package":      {},
	"private":      {},
	"protected":    {},
	"public":       {},
	"return":       {},
	"static":       {},
	"switch":       {},
	"synchronized": {},
	"throw":        {},
	"throws":       {},
	"transient":    {},
	"try":          {},
	"typeof":       {},
	"var":          {},
	"void":         {},
	"volatile":     {},
	"while":        {},
	"with":         {},
}

// IsJavascriptRegexpPrefix reports whether token is a keyword that may
// directly precede a regular expression literal.
func IsJavascriptRegexpPrefix(token string) bool {
	_, ok := regexpPrefixes[token]
	return ok
}
