// Package entity decodes HTML character references fed one rune at a time.
//
// A Decoder waits for '&', collects the reference up to a terminating ';'
// or HTML space and then resolves it. Numeric references are decoded in full;
// named references only cover &lt; &gt; &amp; and &apos;. Anything the
// decoder cannot resolve comes back as the literal text it consumed,
// terminator included, so nothing is lost.
package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/streamhtml/htmlutil"
	"github.com/dhamidi/streamhtml/internal/assert"
)

// MaxEntitySize is the longest reference, '&' included, the decoder will
// buffer before giving up on it.
const MaxEntitySize = 10

// Status is the state of a Decoder.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Completed
)

var statusNames = map[Status]string{
	NotStarted: "not started",
	InProgress: "in progress",
	Completed:  "completed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// namedEntities are the named references the decoder resolves. &quot; is
// not one of them.
var namedEntities = map[string]string{
	"&lt":   "<",
	"&gt":   ">",
	"&amp":  "&",
	"&apos": "'",
}

// Decoder is a three state machine: NotStarted until '&', InProgress while
// collecting, Completed once resolved. It stays Completed until Reset.
type Decoder struct {
	buf    []rune
	status Status
	entity string
}

func New() *Decoder {
	return &Decoder{buf: make([]rune, 0, MaxEntitySize)}
}

// ProcessChar feeds one rune and returns the resulting status.
//
// Before the first '&' every rune is ignored; dropping that text is up to
// the caller. After completion every rune is ignored until Reset.
func (d *Decoder) ProcessChar(r rune) Status {
	if assert.Enabled {
		assert.That(d.status != NotStarted || len(d.buf) == 0,
			"decoder not started with %d buffered runes", len(d.buf))
	}

	switch d.status {
	case NotStarted:
		if r == '&' {
			d.buf = append(d.buf, r)
			d.status = InProgress
		}
	case InProgress:
		if r == ';' || htmlutil.IsHTMLSpace(r) {
			d.status = Completed
			d.entity = d.convert(r)
		} else if len(d.buf) < MaxEntitySize {
			d.buf = append(d.buf, r)
		} else {
			d.status = Completed
			d.entity = d.literal(r)
		}
	}
	return d.status
}

// Status returns the current state.
func (d *Decoder) Status() Status {
	return d.status
}

// Entity returns the decoded text. It is empty until the decoder completes.
func (d *Decoder) Entity() string {
	if d.status != Completed {
		return ""
	}
	return d.entity
}

// Buffered returns the runes collected so far, starting with '&'.
func (d *Decoder) Buffered() string {
	return string(d.buf)
}

// Reset returns the decoder to NotStarted.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
	d.status = NotStarted
	d.entity = ""
}

// Clone returns an independent copy of d, for parsers that need to back
// out of a tentative decode.
func (d *Decoder) Clone() *Decoder {
	buf := make([]rune, len(d.buf), MaxEntitySize)
	copy(buf, d.buf)
	return &Decoder{buf: buf, status: d.status, entity: d.entity}
}

func (d *Decoder) String() string {
	return fmt.Sprintf("%s %q -> %q", d.status, string(d.buf), d.entity)
}

// convert resolves the buffered reference. terminator is the rune that
// ended it; it only shows up in the output when the reference is rejected.
func (d *Decoder) convert(terminator rune) string {
	assert.That(len(d.buf) > 0 && d.buf[0] == '&', "convert on %v", d)

	if len(d.buf) > 1 && d.buf[1] == '#' {
		if len(d.buf) <= 2 {
			return d.literal(terminator)
		}
		digits, base := string(d.buf[2:]), 10
		if d.buf[2] == 'x' || d.buf[2] == 'X' {
			digits, base = string(d.buf[3:]), 16
		}
		cp, err := strconv.ParseInt(digits, base, 32)
		if err != nil || cp < 0 || cp > 0x10FFFF {
			return d.literal(terminator)
		}
		return string(rune(cp))
	}

	if s, ok := namedEntities[string(d.buf)]; ok {
		return s
	}
	return d.literal(terminator)
}

// literal is the fallback for references that cannot be resolved.
func (d *Decoder) literal(last rune) string {
	var b strings.Builder
	for _, r := range d.buf {
		b.WriteRune(r)
	}
	b.WriteRune(last)
	return b.String()
}
