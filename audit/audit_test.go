package audit

import (
	"bytes"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html><head><meta http-equiv="Refresh" content="5; URL=/next"></head>
<body><a href="/x" onclick="return /y/.test(v) ? a / b : 0" style="color:red">x</a>
<script>var n = total / count;</script>
<script type="application/json">{"a": "/b/"}</script>
</body></html>`

func TestDocument(t *testing.T) {
	report, err := Document(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	want := []Finding{
		{Kind: KindURIAttribute, Element: "a", Attribute: "href", Value: "/x"},
		{Kind: KindScriptAttribute, Element: "a", Attribute: "onclick", Value: "return /y/.test(v) ? a / b : 0"},
		{Kind: KindRegexp, Element: "a", Attribute: "onclick", Value: "y", Offset: 7},
		{Kind: KindDivision, Element: "a", Attribute: "onclick", Offset: 23},
		{Kind: KindStyleAttribute, Element: "a", Attribute: "style", Value: "color:red"},
		{Kind: KindDivision, Element: "script", Offset: 14},
		{Kind: KindMetaRefresh, Element: "meta", Attribute: "content", Value: "/next"},
	}

	if len(report.Findings) != len(want) {
		t.Fatalf("got %d findings, want %d: %+v", len(report.Findings), len(want), report.Findings)
	}
	for i := range want {
		if report.Findings[i] != want[i] {
			t.Errorf("finding %d = %+v, want %+v", i, report.Findings[i], want[i])
		}
	}
}

func TestDocumentMetaRefreshWithoutURL(t *testing.T) {
	report, err := Document(strings.NewReader(`<meta http-equiv="refresh" content="30">`))
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if n := report.Count(KindMetaRefresh); n != 0 {
		t.Errorf("Count(meta-refresh) = %d, want 0", n)
	}
}

func TestDocumentMetaRefreshURLStart(t *testing.T) {
	report, err := Document(strings.NewReader(`<meta http-equiv="refresh" content="0; url=">`))
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if n := report.Count(KindMetaRefresh); n != 1 {
		t.Fatalf("Count(meta-refresh) = %d, want 1", n)
	}
}

func TestDocumentIgnoresOtherMeta(t *testing.T) {
	report, err := Document(strings.NewReader(`<meta http-equiv="content-type" content="5; url=/x">`))
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(report.Findings) != 0 {
		t.Errorf("Findings = %+v, want none", report.Findings)
	}
}

func TestReportWriteText(t *testing.T) {
	report := &Report{Findings: []Finding{
		{Kind: KindURIAttribute, Element: "img", Attribute: "src", Value: "a.png"},
		{Kind: KindRegexp, Element: "script", Value: "x", Offset: 3},
	}}

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"uri-attribute", "img[src]", `"a.png"`, "script@3"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText output %q does not contain %q", out, want)
		}
	}
}
