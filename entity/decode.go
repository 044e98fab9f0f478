package entity

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/dhamidi/streamhtml/htmlutil"
)

// DecodeString decodes every character reference in s with a Decoder and
// copies all other text through. A reference left open at the end of s is
// copied through as is.
func DecodeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	d := New()
	for _, r := range s {
		if d.Status() == NotStarted && r != '&' {
			b.WriteRune(r)
			continue
		}
		if d.ProcessChar(r) == Completed {
			b.WriteString(completed(d, r))
			d.Reset()
		}
	}
	if d.Status() == InProgress {
		b.WriteString(d.Buffered())
	}
	return b.String()
}

// transformer is DecodeString for streams. Decoder state and any resolved
// text that did not fit into dst carry over between Transform calls.
type transformer struct {
	d   *Decoder
	out []byte
	pos int
}

// NewTransformer returns a transform.Transformer that decodes character
// references the same way DecodeString does.
func NewTransformer() transform.Transformer {
	return &transformer{d: New()}
}

func (t *transformer) Reset() {
	t.d.Reset()
	t.out, t.pos = t.out[:0], 0
}

func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		n, done := t.flush(dst[nDst:])
		nDst += n
		if !done {
			return nDst, nSrc, transform.ErrShortDst
		}
		if nSrc == len(src) {
			break
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		t.step(r, src[nSrc:nSrc+size])
		nSrc += size
	}

	if atEOF && t.d.Status() == InProgress {
		t.out = append(t.out, t.d.Buffered()...)
		t.d.Reset()
		n, done := t.flush(dst[nDst:])
		nDst += n
		if !done {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

// step feeds one rune; raw is its encoding in the source.
func (t *transformer) step(r rune, raw []byte) {
	if t.d.Status() == NotStarted && r != '&' {
		t.out = append(t.out, raw...)
		return
	}
	if t.d.ProcessChar(r) == Completed {
		t.out = append(t.out, completed(t.d, r)...)
		t.d.Reset()
	}
}

// flush copies pending output into dst and reports whether all of it fit.
func (t *transformer) flush(dst []byte) (int, bool) {
	n := copy(dst, t.out[t.pos:])
	t.pos += n
	if t.pos < len(t.out) {
		return n, false
	}
	t.out, t.pos = t.out[:0], 0
	return n, true
}

// completed returns the text that replaces a reference ended by last. A
// resolved reference leaves its terminator out, so whitespace that ended
// it is put back; a rejected one already carries it.
func completed(d *Decoder, last rune) string {
	s := d.Entity()
	if htmlutil.IsHTMLSpace(last) && s != d.Buffered()+string(last) {
		s += string(last)
	}
	return s
}
