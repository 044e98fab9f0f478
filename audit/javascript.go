package audit

import (
	"github.com/dhamidi/streamhtml/htmlutil"
	"github.com/dhamidi/streamhtml/jsbuffer"
	"github.com/dhamidi/streamhtml/recorder"
)

// Slash is a '/' in JavaScript source that is neither part of a comment nor
// of a string.
type Slash struct {
	Offset  int    // rune offset of the '/'
	Regexp  bool   // true when it opens a regular expression literal
	Literal string // the regexp body, capped at recorder.BufferSize runes
}

type jsState int

const (
	jsCode jsState = iota
	jsSlash
	jsRegexp
	jsSingleQuote
	jsDoubleQuote
	jsTemplate
	jsLineComment
	jsBlockComment
)

// jsScanner is a small push parser over JavaScript. It only tracks enough
// lexical structure to find slashes; the lookback buffer decides what each
// one means.
type jsScanner struct {
	buf     *jsbuffer.TokenBuffer
	saved   *jsbuffer.TokenBuffer
	rec     *recorder.Recorder
	state   jsState
	escaped bool
	inClass bool
	star    bool
	slashAt int
	slashes []Slash
}

// ScanJavascript reports every slash in src and whether it starts a
// regular expression or is a division operator.
func ScanJavascript(src string) []Slash {
	s := &jsScanner{
		buf: jsbuffer.New(),
		rec: recorder.New(),
	}
	i := 0
	for _, r := range src {
		s.step(i, r)
		i++
	}
	s.finish()
	return s.slashes
}

func (s *jsScanner) step(i int, r rune) {
	switch s.state {
	case jsCode:
		s.code(i, r)
	case jsSlash:
		s.afterSlash(i, r)
	case jsRegexp:
		s.regexp(r)
	case jsSingleQuote, jsDoubleQuote, jsTemplate:
		s.quoted(r)
	case jsLineComment:
		if r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029 {
			s.state = jsCode
			s.buf.AppendChar(r)
		}
	case jsBlockComment:
		if s.star && r == '/' {
			s.state = jsCode
		}
		s.star = r == '*'
	}
}

func (s *jsScanner) code(i int, r rune) {
	switch r {
	case '\'':
		s.state = jsSingleQuote
	case '"':
		s.state = jsDoubleQuote
	case '`':
		s.state = jsTemplate
	case '/':
		// Keep the buffer as it was before the slash in case the slash
		// turns out to open a comment.
		s.saved = s.buf.Clone()
		s.slashAt = i
		s.state = jsSlash
	}
	s.buf.AppendChar(r)
}

func (s *jsScanner) afterSlash(i int, r rune) {
	switch r {
	case '/', '*':
		s.buf = s.saved
		s.buf.AppendChar(' ')
		s.star = false
		s.state = jsLineComment
		if r == '*' {
			s.state = jsBlockComment
		}
		return
	}

	if !startsRegexp(s.saved) {
		s.slashes = append(s.slashes, Slash{Offset: s.slashAt})
		s.state = jsCode
		s.step(i, r)
		return
	}

	s.rec.Start()
	s.escaped, s.inClass = false, false
	s.state = jsRegexp
	s.regexp(r)
}

func (s *jsScanner) regexp(r rune) {
	switch {
	case s.escaped:
		s.escaped = false
	case r == '\\':
		s.escaped = true
	case r == '[':
		s.inClass = true
	case r == ']':
		s.inClass = false
	case r == '/' && !s.inClass, r == '\n':
		s.closeRegexp()
		return
	}
	s.rec.MaybeRecord(r)
}

// closeRegexp ends the literal. The opening slash in the buffer becomes an
// identifier rune, since a regexp is a value and a slash after it divides.
func (s *jsScanner) closeRegexp() {
	s.rec.Stop()
	s.slashes = append(s.slashes, Slash{Offset: s.slashAt, Regexp: true, Literal: s.rec.Content()})
	s.rec.Reset()
	s.buf.SetChar(-1, 'z')
	s.state = jsCode
}

func (s *jsScanner) quoted(r rune) {
	if s.escaped {
		s.escaped = false
		return
	}
	switch {
	case r == '\\':
		s.escaped = true
	case r == '\'' && s.state == jsSingleQuote,
		r == '"' && s.state == jsDoubleQuote,
		r == '`' && s.state == jsTemplate:
		s.buf.AppendChar(r)
		s.state = jsCode
	}
}

func (s *jsScanner) finish() {
	switch s.state {
	case jsSlash:
		s.slashes = append(s.slashes, Slash{Offset: s.slashAt, Regexp: startsRegexp(s.saved)})
	case jsRegexp:
		s.closeRegexp()
	}
}

// startsRegexp reports whether a slash following the content of b opens a
// regular expression literal.
func startsRegexp(b *jsbuffer.TokenBuffer) bool {
	pos := -1
	if htmlutil.IsJavascriptWhitespace(b.Char(pos)) {
		pos--
	}

	switch c := b.Char(pos); c {
	case jsbuffer.NoChar:
		return true
	case '+', '-':
		// "a + /x/" is a regexp, "a++ / 2" a division.
		run := 1
		for b.Char(pos-run) == c {
			run++
		}
		return run%2 == 1
	case '.':
		d := b.Char(pos - 1)
		return d < '0' || d > '9'
	case ')', ']', '\'', '"', '`':
		return false
	default:
		if !htmlutil.IsJavascriptIdentifier(c) {
			return true
		}
	}

	ident, ok := b.LastIdentifier()
	return ok && htmlutil.IsJavascriptRegexpPrefix(ident)
}
