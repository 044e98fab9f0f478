package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dhamidi/streamhtml/audit"
	"github.com/dhamidi/streamhtml/entity"
	"github.com/dhamidi/streamhtml/htmlutil"
)

// Hover describes, in markdown, the character reference, meta refresh
// content, script slash or attribute name at the given LSP position. line and character are zero
// based; character counts UTF-16 code units.
func Hover(text string, line, character int) (string, bool) {
	offset, ok := byteOffset(text, line, character)
	if !ok {
		return "", false
	}
	if s, ok := entityHover(text, offset); ok {
		return s, true
	}
	if s, ok := metaHover(text, offset); ok {
		return s, true
	}
	if s, ok := slashHover(text, offset); ok {
		return s, true
	}
	return attributeHover(text, offset)
}

// byteOffset converts an LSP position into a byte offset into text.
func byteOffset(text string, line, character int) (int, bool) {
	start := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return 0, false
		}
		start += nl + 1
	}

	units := 0
	for i, r := range text[start:] {
		if units >= character || r == '\n' {
			return start + i, units == character
		}
		units += utf16.RuneLen(r)
	}
	return len(text), units == character
}

func entityHover(text string, offset int) (string, bool) {
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	upto := offset
	if upto < len(text) {
		upto++
	}
	amp := strings.LastIndexByte(text[lineStart:upto], '&')
	if amp < 0 {
		return "", false
	}
	amp += lineStart

	d := entity.New()
	end := amp
	for i, r := range text[amp:] {
		end = amp + i + utf8.RuneLen(r)
		if d.ProcessChar(r) == entity.Completed {
			break
		}
	}
	if d.Status() != entity.Completed || offset >= end {
		return "", false
	}

	raw := strings.TrimRightFunc(text[amp:end], htmlutil.IsHTMLSpace)
	if d.Entity() == text[amp:end] {
		return fmt.Sprintf("`%s` is not a recognised character reference", raw), true
	}
	return fmt.Sprintf("`%s` decodes to `%s`", raw, d.Entity()), true
}

// metaHover reports the redirect target when offset is inside the content
// value of a <meta http-equiv="refresh"> tag.
func metaHover(text string, offset int) (string, bool) {
	open := strings.LastIndexByte(text[:offset], '<')
	if open < 0 || strings.IndexByte(text[open:offset], '>') >= 0 {
		return "", false
	}
	gt := strings.IndexByte(text[offset:], '>')
	if gt < 0 {
		return "", false
	}
	tag := text[open : offset+gt+1]

	start, end, ok := contentValue(tag)
	if !ok || offset-open < start || offset-open > end {
		return "", false
	}

	z := html.NewTokenizer(strings.NewReader(tag))
	if tt := z.Next(); tt != html.StartTagToken && tt != html.SelfClosingTagToken {
		return "", false
	}
	tok := z.Token()
	if tok.DataAtom != atom.Meta {
		return "", false
	}
	var equiv, content string
	for _, a := range tok.Attr {
		switch a.Key {
		case "http-equiv":
			equiv = a.Val
		case "content":
			content = a.Val
		}
	}
	if !strings.EqualFold(strings.TrimSpace(equiv), "refresh") {
		return "", false
	}

	url, kind := htmlutil.ContentAttributeURL(content)
	if kind == htmlutil.MetaRedirectURL {
		return fmt.Sprintf("meta refresh to `%s`", url), true
	}
	return fmt.Sprintf("meta refresh: %s", kind), true
}

// contentValue finds the value of the content attribute in a single tag and
// returns its byte span, quotes excluded.
func contentValue(tag string) (start, end int, ok bool) {
	from := 0
	for {
		i := indexFold(tag[from:], "content")
		if i < 0 {
			return 0, 0, false
		}
		i += from
		from = i + len("content")
		if i == 0 || !htmlutil.IsHTMLSpace(rune(tag[i-1])) {
			continue
		}
		j := from
		for j < len(tag) && htmlutil.IsHTMLSpace(rune(tag[j])) {
			j++
		}
		if j == len(tag) || tag[j] != '=' {
			continue
		}
		j++
		for j < len(tag) && htmlutil.IsHTMLSpace(rune(tag[j])) {
			j++
		}
		if j < len(tag) && (tag[j] == '"' || tag[j] == '\'') {
			quote := tag[j]
			k := strings.IndexByte(tag[j+1:], quote)
			if k < 0 {
				return 0, 0, false
			}
			return j + 1, j + 1 + k, true
		}
		k := j
		for k < len(tag) && tag[k] != '>' && !htmlutil.IsHTMLSpace(rune(tag[k])) {
			k++
		}
		return j, k, true
	}
}

func slashHover(text string, offset int) (string, bool) {
	if offset >= len(text) || text[offset] != '/' {
		return "", false
	}
	open := lastIndexFold(text[:offset], "<script")
	if open < 0 {
		return "", false
	}
	gt := strings.IndexByte(text[open:offset], '>')
	if gt < 0 {
		return "", false
	}
	bodyStart := open + gt + 1
	bodyEnd := len(text)
	if end := indexFold(text[bodyStart:], "</script"); end >= 0 {
		bodyEnd = bodyStart + end
	}
	if offset >= bodyEnd {
		return "", false
	}

	at := utf8.RuneCountInString(text[bodyStart:offset])
	for _, s := range audit.ScanJavascript(text[bodyStart:bodyEnd]) {
		if s.Offset != at {
			continue
		}
		if s.Regexp {
			return fmt.Sprintf("regular expression literal `/%s/`", s.Literal), true
		}
		return "division operator", true
	}
	return "", false
}

func attributeHover(text string, offset int) (string, bool) {
	start, end := offset, offset
	for start > 0 && isAttributeNameByte(text[start-1]) {
		start--
	}
	for end < len(text) && isAttributeNameByte(text[end]) {
		end++
	}
	if start == end || start == 0 {
		return "", false
	}
	if text[start-1] != ' ' && text[start-1] != '\t' && text[start-1] != '\n' && text[start-1] != '\r' {
		return "", false
	}
	if strings.LastIndexByte(text[:start], '<') <= strings.LastIndexByte(text[:start], '>') {
		return "", false
	}
	rest := strings.TrimLeft(text[end:], " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}

	name := strings.ToLower(text[start:end])
	return fmt.Sprintf("attribute `%s`: %s", name, htmlutil.ClassifyAttribute(name)), true
}

func isAttributeNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == ':'
}

func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func lastIndexFold(s, sub string) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
