package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const testURI = "file:///page.html"

func hoverAt(t *testing.T, ls *Server, line, character protocol.UInteger) string {
	t.Helper()
	hover, err := ls.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: character},
		},
	})
	if err != nil {
		t.Fatalf("hover: %v", err)
	}
	if hover == nil {
		return ""
	}
	content, ok := hover.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("hover contents = %T, want protocol.MarkupContent", hover.Contents)
	}
	if content.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("hover kind = %q, want %q", content.Kind, protocol.MarkupKindMarkdown)
	}
	return content.Value
}

func TestServerDocumentLifecycle(t *testing.T) {
	ls := NewServer("test")

	if got := hoverAt(t, ls, 0, 1); got != "" {
		t.Errorf("hover before open = %q, want nothing", got)
	}

	err := ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "html",
			Version:    1,
			Text:       "x &lt; y",
		},
	})
	if err != nil {
		t.Fatalf("didOpen: %v", err)
	}
	if got, want := hoverAt(t, ls, 0, 3), "`&lt;` decodes to `<`"; got != want {
		t.Errorf("hover after open = %q, want %q", got, want)
	}

	err = ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "x &gt; y"},
		},
	})
	if err != nil {
		t.Fatalf("didChange: %v", err)
	}
	if got, want := hoverAt(t, ls, 0, 3), "`&gt;` decodes to `>`"; got != want {
		t.Errorf("hover after change = %q, want %q", got, want)
	}
	if got := hoverAt(t, ls, 0, 0); got != "" {
		t.Errorf("hover on plain text = %q, want nothing", got)
	}

	err = ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatalf("didClose: %v", err)
	}
	if ls.docs.Len() != 0 {
		t.Errorf("%d documents open after close", ls.docs.Len())
	}
	if got := hoverAt(t, ls, 0, 3); got != "" {
		t.Errorf("hover after close = %q, want nothing", got)
	}
}

func TestServerInitializeAdvertisesHover(t *testing.T) {
	ls := NewServer("1.2.3")
	result, err := ls.initialize(nil, &protocol.InitializeParams{})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	res, ok := result.(protocol.InitializeResult)
	if !ok {
		t.Fatalf("initialize result = %T", result)
	}
	if res.Capabilities.HoverProvider != true {
		t.Errorf("HoverProvider = %v, want true", res.Capabilities.HoverProvider)
	}
	if res.ServerInfo == nil || res.ServerInfo.Version == nil || *res.ServerInfo.Version != "1.2.3" {
		t.Errorf("ServerInfo = %+v, want version 1.2.3", res.ServerInfo)
	}
}
