package htmlutil

import (
	"fmt"
	"regexp"
)

// MetaRedirectType describes where a meta refresh content value stands with
// respect to its URL part.
type MetaRedirectType int

const (
	// MetaRedirectNone means the value has no URL part.
	MetaRedirectNone MetaRedirectType = iota
	// MetaRedirectURLStart means the value ends exactly where the URL
	// would begin, as in "5; URL=".
	MetaRedirectURLStart
	// MetaRedirectURL means URL text is already present.
	MetaRedirectURL
)

func (t MetaRedirectType) String() string {
	switch t {
	case MetaRedirectNone:
		return "none"
	case MetaRedirectURLStart:
		return "url-start"
	case MetaRedirectURL:
		return "url"
	}
	return fmt.Sprintf("MetaRedirectType(%d)", int(t))
}

// metaRedirect matches the prefix of a refresh value up to the URL.
// The whitespace class spells out \v, which RE2's \s leaves out.
var metaRedirect = regexp.MustCompile(`(?i)^[ \t\n\x0B\f\r]*[0-9]*[ \t\n\x0B\f\r]*;[ \t\n\x0B\f\r]*URL[ \t\n\x0B\f\r]*=[ \t\n\x0B\f\r]*['"]?`)

// ParseContentAttributeForURL classifies the content attribute of a
// <meta http-equiv="refresh"> element. Values may be partial, so a value
// that stops right after "URL=" reports MetaRedirectURLStart.
func ParseContentAttributeForURL(value string) MetaRedirectType {
	_, kind := ContentAttributeURL(value)
	return kind
}

// ContentAttributeURL is ParseContentAttributeForURL that also returns the
// text following the URL prefix. The text is empty unless the kind is
// MetaRedirectURL.
func ContentAttributeURL(value string) (string, MetaRedirectType) {
	loc := metaRedirect.FindStringIndex(value)
	if loc == nil {
		return "", MetaRedirectNone
	}
	if loc[1] == len(value) {
		return "", MetaRedirectURLStart
	}
	return value[loc[1]:], MetaRedirectURL
}
