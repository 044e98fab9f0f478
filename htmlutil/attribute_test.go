package htmlutil

import "testing"

func TestIsAttributeURI(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"action", true},
		{"archive", true},
		{"background", true},
		{"cite", true},
		{"classid", true},
		{"codebase", true},
		{"data", true},
		{"dynsrc", true},
		{"href", true},
		{"longdesc", true},
		{"src", true},
		{"usemap", true},
		{"style", false},
		{"onclick", false},
		{"HREF", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAttributeURI(tt.name); got != tt.want {
				t.Errorf("IsAttributeURI(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsAttributeJavascript(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"onclick", true},
		{"onload", true},
		{"on", true},
		{"one", true},
		{"href", false},
		{"ONCLICK", false},
		{"o", false},
	}

	for _, tt := range tests {
		if got := IsAttributeJavascript(tt.name); got != tt.want {
			t.Errorf("IsAttributeJavascript(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsAttributeStyle(t *testing.T) {
	if !IsAttributeStyle("style") {
		t.Errorf("IsAttributeStyle(%q) = false, want true", "style")
	}
	for _, name := range []string{"Style", "styles", "class", ""} {
		if IsAttributeStyle(name) {
			t.Errorf("IsAttributeStyle(%q) = true, want false", name)
		}
	}
}

func TestClassifyAttribute(t *testing.T) {
	tests := []struct {
		name string
		want AttributeKind
	}{
		{"onmouseover", AttributeJavascript},
		{"style", AttributeStyle},
		{"src", AttributeURI},
		{"title", AttributeRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyAttribute(tt.name); got != tt.want {
				t.Errorf("ClassifyAttribute(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestAttributeKindString(t *testing.T) {
	if got := AttributeURI.String(); got != "uri" {
		t.Errorf("AttributeURI.String() = %q, want %q", got, "uri")
	}
	if got := AttributeKind(42).String(); got != "unknown" {
		t.Errorf("AttributeKind(42).String() = %q, want %q", got, "unknown")
	}
}
