// Package jsbuffer keeps the last few significant characters of a
// JavaScript stream. A parser that meets '/' looks back through it to tell a
// regular expression literal from a division.
package jsbuffer

import (
	"strings"

	"github.com/dhamidi/streamhtml/htmlutil"
	"github.com/dhamidi/streamhtml/internal/assert"
)

// RingSize is the number of runes a TokenBuffer remembers.
const RingSize = 18

// NoChar is returned for positions that hold nothing.
const NoChar rune = 0

// TokenBuffer is a ring of RingSize runes addressed backwards from the most
// recent one: -1 is the last rune written, -2 the one before, and so on.
// Consecutive whitespace is stored as a single rune.
//
// The zero value is an empty buffer. A TokenBuffer is not safe for
// concurrent use.
type TokenBuffer struct {
	buf [RingSize]rune
	end int // next write index
	n   int // runes stored
}

func New() *TokenBuffer {
	return &TokenBuffer{}
}

// AppendChar stores r, evicting the oldest rune when the ring is full.
// Whitespace directly after stored whitespace is dropped.
func (b *TokenBuffer) AppendChar(r rune) {
	if htmlutil.IsJavascriptWhitespace(r) && htmlutil.IsJavascriptWhitespace(b.Char(-1)) {
		return
	}

	b.buf[b.end] = r
	b.end = (b.end + 1) % RingSize
	if b.n < RingSize {
		b.n++
	}
}

// AppendString appends every rune of s.
func (b *TokenBuffer) AppendString(s string) {
	for _, r := range s {
		b.AppendChar(r)
	}
}

// PopChar removes and returns the most recent rune, or NoChar when empty.
func (b *TokenBuffer) PopChar() rune {
	if b.n == 0 {
		return NoChar
	}
	b.end = (b.end - 1 + RingSize) % RingSize
	b.n--
	return b.buf[b.end]
}

// Char returns the rune at position, which must be negative. Positions
// before the oldest stored rune yield NoChar.
func (b *TokenBuffer) Char(position int) rune {
	abs := b.absolutePosition(position)
	if abs < 0 {
		return NoChar
	}
	return b.buf[abs]
}

// SetChar replaces the rune at position. It reports false, leaving the
// buffer untouched, when position is out of range.
func (b *TokenBuffer) SetChar(position int, r rune) bool {
	abs := b.absolutePosition(position)
	if abs < 0 {
		return false
	}
	b.buf[abs] = r
	return true
}

// LastIdentifier returns the identifier or keyword that ends the buffer,
// ignoring one trailing whitespace rune. ok is false when the buffer does
// not end with one.
func (b *TokenBuffer) LastIdentifier() (ident string, ok bool) {
	end := -1
	if htmlutil.IsJavascriptWhitespace(b.Char(end)) {
		end--
	}

	pos := end
	for htmlutil.IsJavascriptIdentifier(b.Char(pos)) {
		pos--
	}
	if pos+1 > end {
		return "", false
	}
	return b.Slice(pos+1, end), true
}

// Slice returns the runes from start to end, both inclusive and negative.
// Positions holding nothing are skipped, so the result can be shorter than
// end-start+1.
func (b *TokenBuffer) Slice(start, end int) string {
	if assert.Enabled {
		assert.That(start <= end && end < 0, "slice(%d, %d)", start, end)
	}

	var s strings.Builder
	for pos := start; pos <= end; pos++ {
		if r := b.Char(pos); r != NoChar {
			s.WriteRune(r)
		}
	}
	return s.String()
}

// Len returns the number of runes stored.
func (b *TokenBuffer) Len() int {
	return b.n
}

// Clone returns an independent copy of b.
func (b *TokenBuffer) Clone() *TokenBuffer {
	c := *b
	return &c
}

func (b *TokenBuffer) String() string {
	if b.n == 0 {
		return ""
	}
	return b.Slice(-b.n, -1)
}

// absolutePosition maps a negative position to an index into buf, or -1
// when nothing is stored there.
func (b *TokenBuffer) absolutePosition(position int) int {
	if assert.Enabled {
		assert.That(position < 0, "position %d is not negative", position)
	}

	if position >= 0 || position < -RingSize || position < -b.n {
		return -1
	}
	return (b.end + position + RingSize) % RingSize
}
