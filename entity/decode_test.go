package entity

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/net/html"
	"golang.org/x/text/transform"
)

var decodeTests = []struct {
	input string
	want  string
}{
	{"", ""},
	{"plain text", "plain text"},
	{"a &lt; b &amp;&amp; c &gt; d", "a < b && c > d"},
	{"&#72;&#x69;!", "Hi!"},
	{"say &quot;hi&quot;", "say &quot;hi&quot;"},
	{"AT&T rocks", "AT&T rocks"},
	{"fish & chips", "fish & chips"},
	{"&abcdefghijk;", "&abcdefghijk;"},
	{"&a&lt;", "&a&lt;"},
	{"trailing &am", "trailing &am"},
	{"a &lt b", "a < b"},
	{"x &#65\ny", "x A\ny"},
	{"&amp\tz", "&\tz"},
	{"&bogus z", "&bogus z"},
	{"caf\xc3\xa9 &#233;", "caf\xc3\xa9 \xc3\xa9"},
}

func TestDecodeString(t *testing.T) {
	for _, tt := range decodeTests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DecodeString(tt.input); got != tt.want {
				t.Errorf("DecodeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Whitespace that ends a resolved reference is still part of the text.
func TestDecodeStringKeepsWhitespaceTerminator(t *testing.T) {
	inputs := []string{"a &lt b", "x &#65\ny", "&amp\tz", "&gt\r\n", "1 &#x3C 2"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got, want := DecodeString(input), html.UnescapeString(input); got != want {
				t.Errorf("DecodeString(%q) = %q, html.UnescapeString = %q", input, got, want)
			}
		})
	}
}

func TestTransformerString(t *testing.T) {
	for _, tt := range decodeTests {
		t.Run(tt.input, func(t *testing.T) {
			got, _, err := transform.String(NewTransformer(), tt.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if got != tt.want {
				t.Errorf("transform.String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransformerOneByteAtATime(t *testing.T) {
	for _, tt := range decodeTests {
		t.Run(tt.input, func(t *testing.T) {
			r := transform.NewReader(iotest.OneByteReader(strings.NewReader(tt.input)), NewTransformer())
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("decoded %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformerShortDst(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 1)
	src := []byte("&lt;&gt;")

	var out []byte
	for {
		nDst, nSrc, err := tr.Transform(dst, src, true)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		if err == nil {
			break
		}
		if err != transform.ErrShortDst {
			t.Fatalf("Transform: %v", err)
		}
	}
	if string(out) != "<>" {
		t.Errorf("decoded %q, want %q", out, "<>")
	}
}

func TestTransformerReset(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 16)
	if _, _, err := tr.Transform(dst, []byte("&am"), false); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	tr.Reset()

	nDst, _, err := tr.Transform(dst, []byte("p;"), true)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got := string(dst[:nDst]); got != "p;" {
		t.Errorf("after Reset decoded %q, want %q", got, "p;")
	}
}
