// Package audit walks an HTML document and reports the places where output
// escaping has to change: script, style and URI attributes, meta refresh
// URLs and, inside scripts, every slash that starts a regular expression
// rather than a division.
package audit

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/andybalholm/cascadia"
	"github.com/tliron/commonlog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dhamidi/streamhtml/htmlutil"
)

var log = commonlog.GetLogger("streamhtml.audit")

var metaRefresh = cascadia.MustCompile("meta[http-equiv][content]")

type Kind string

const (
	KindScriptAttribute Kind = "script-attribute"
	KindStyleAttribute  Kind = "style-attribute"
	KindURIAttribute    Kind = "uri-attribute"
	KindMetaRefresh     Kind = "meta-refresh"
	KindRegexp          Kind = "regexp"
	KindDivision        Kind = "division"
)

// Finding is one place in the document that needs context aware escaping.
type Finding struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Element   string `json:"element" yaml:"element"`
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty"`
	Offset    int    `json:"offset,omitempty" yaml:"offset,omitempty"`
}

type Report struct {
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Count returns the number of findings of the given kind.
func (r *Report) Count(kind Kind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// WriteText writes the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range r.Findings {
		where := f.Element
		if f.Attribute != "" {
			where += "[" + f.Attribute + "]"
		}
		if f.Kind == KindRegexp || f.Kind == KindDivision {
			where += fmt.Sprintf("@%d", f.Offset)
		}
		fmt.Fprintf(tw, "%s\t%s\t%q\n", f.Kind, where, f.Value)
	}
	return tw.Flush()
}

// Document parses r as HTML and audits it.
func Document(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return Node(doc), nil
}

// Node audits the tree rooted at root.
func Node(root *html.Node) *Report {
	report := &Report{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			report.attributes(n)
			if n.DataAtom == atom.Script && isJavascript(n) {
				report.slashes(n.Data, "", scriptText(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, meta := range metaRefresh.MatchAll(root) {
		report.metaRefresh(meta)
	}

	log.Debugf("audit found %d findings", len(report.Findings))
	return report
}

func (r *Report) attributes(n *html.Node) {
	for _, a := range n.Attr {
		name := strings.ToLower(a.Key)
		f := Finding{Element: n.Data, Attribute: name, Value: a.Val}
		switch htmlutil.ClassifyAttribute(name) {
		case htmlutil.AttributeJavascript:
			f.Kind = KindScriptAttribute
			r.Findings = append(r.Findings, f)
			r.slashes(n.Data, name, a.Val)
		case htmlutil.AttributeStyle:
			f.Kind = KindStyleAttribute
			r.Findings = append(r.Findings, f)
		case htmlutil.AttributeURI:
			f.Kind = KindURIAttribute
			r.Findings = append(r.Findings, f)
		}
	}
}

func (r *Report) slashes(element, attribute, src string) {
	for _, s := range ScanJavascript(src) {
		f := Finding{Kind: KindDivision, Element: element, Attribute: attribute, Offset: s.Offset}
		if s.Regexp {
			f.Kind = KindRegexp
			f.Value = s.Literal
		}
		r.Findings = append(r.Findings, f)
	}
}

func (r *Report) metaRefresh(n *html.Node) {
	if !strings.EqualFold(attr(n, "http-equiv"), "refresh") {
		return
	}
	content := attr(n, "content")
	url, kind := htmlutil.ContentAttributeURL(content)
	if kind == htmlutil.MetaRedirectNone {
		log.Debugf("meta refresh without url: %q", content)
		return
	}
	r.Findings = append(r.Findings, Finding{
		Kind:      KindMetaRefresh,
		Element:   n.Data,
		Attribute: "content",
		Value:     url,
	})
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// isJavascript reports whether a <script> element holds JavaScript rather
// than data such as JSON or a template.
func isJavascript(n *html.Node) bool {
	switch strings.ToLower(strings.TrimSpace(attr(n, "type"))) {
	case "", "module", "text/javascript", "application/javascript", "application/ecmascript", "text/ecmascript":
		return true
	}
	return false
}

func scriptText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
