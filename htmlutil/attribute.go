package htmlutil

import "strings"

// uriAttributes lists the HTML attributes whose value is a URI.
var uriAttributes = map[string]struct{}{
	"action":     {},
	"archive":    {},
	"background": {},
	"cite":       {},
	"classid":    {},
	"codebase":   {},
	"data":       {},
	"dynsrc":     {},
	"href":       {},
	"longdesc":   {},
	"src":        {},
	"usemap":     {},
}

// IsAttributeJavascript reports whether the attribute holds script, which is
// the case for every event handler ("onclick", "onload", ...).
//
// The name is matched as given; callers lower-case it first.
func IsAttributeJavascript(name string) bool {
	return strings.HasPrefix(name, "on")
}

// IsAttributeStyle reports whether the attribute holds CSS.
func IsAttributeStyle(name string) bool {
	return name == "style"
}

// IsAttributeURI reports whether the attribute value is expected to be a URI.
func IsAttributeURI(name string) bool {
	_, ok := uriAttributes[name]
	return ok
}

// AttributeKind names the content type of an attribute value.
type AttributeKind int

const (
	AttributeRegular AttributeKind = iota
	AttributeJavascript
	AttributeStyle
	AttributeURI
)

var attributeKindNames = map[AttributeKind]string{
	AttributeRegular:    "regular",
	AttributeJavascript: "javascript",
	AttributeStyle:      "style",
	AttributeURI:        "uri",
}

func (k AttributeKind) String() string {
	if name, ok := attributeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ClassifyAttribute combines the attribute predicates. Script takes
// precedence over style, style over URI.
func ClassifyAttribute(name string) AttributeKind {
	switch {
	case IsAttributeJavascript(name):
		return AttributeJavascript
	case IsAttributeStyle(name):
		return AttributeStyle
	case IsAttributeURI(name):
		return AttributeURI
	default:
		return AttributeRegular
	}
}
