// Package recorder captures characters while a parser is inside a construct
// whose text it needs later, such as an attribute name or a tag name.
package recorder

import "fmt"

// BufferSize is the maximum number of runes a Recorder keeps. Anything
// beyond it is dropped.
const BufferSize = 255

// Recorder accumulates runes between Start and Stop. It is not safe for
// concurrent use.
type Recorder struct {
	buf       []rune
	recording bool
}

func New() *Recorder {
	return &Recorder{buf: make([]rune, 0, BufferSize)}
}

// Start clears the content and turns recording on. Calling Start while
// already recording starts over.
func (r *Recorder) Start() {
	r.buf = r.buf[:0]
	r.recording = true
}

// Stop turns recording off and keeps the content.
func (r *Recorder) Stop() {
	r.recording = false
}

// MaybeRecord appends ch when recording and below BufferSize.
func (r *Recorder) MaybeRecord(ch rune) {
	if r.recording && len(r.buf) < BufferSize {
		r.buf = append(r.buf, ch)
	}
}

// Clear empties the content without touching the recording flag.
func (r *Recorder) Clear() {
	r.buf = r.buf[:0]
}

// Reset empties the content and stops recording.
func (r *Recorder) Reset() {
	r.Clear()
	r.Stop()
}

func (r *Recorder) Content() string {
	return string(r.buf)
}

func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Clone returns an independent copy of r.
func (r *Recorder) Clone() *Recorder {
	buf := make([]rune, len(r.buf), BufferSize)
	copy(buf, r.buf)
	return &Recorder{buf: buf, recording: r.recording}
}

func (r *Recorder) String() string {
	return fmt.Sprintf("recording: %t, content: %q", r.recording, string(r.buf))
}
