package source

import (
	"unicode/utf8"

	"github.com/npillmayer/enumerate"
)

// RuneCursor enumerates the UTF-8 runes of a string.
//
// Movement is in rune steps, while the position is kept as a byte offset.
// Invalid UTF-8 bytes are reported as utf8.RuneError, one byte at a time.
type RuneCursor struct {
	text    string
	byteOff int
}

var _ enumerate.Enumerator[rune] = (*RuneCursor)(nil)

// Runes creates a rune-aware enumerator at the start of text.
func Runes(text string) *RuneCursor {
	return &RuneCursor{text: text}
}

// HasCurrent is part of interface enumerate.Enumerator.
func (rc *RuneCursor) HasCurrent() bool {
	return rc != nil && rc.byteOff < len(rc.text)
}

// Current returns the rune at the current position.
func (rc *RuneCursor) Current() rune {
	if !rc.HasCurrent() {
		panic(enumerate.ErrNotLive)
	}
	r, _ := utf8.DecodeRuneInString(rc.text[rc.byteOff:])
	return r
}

// Advance moves by one rune.
func (rc *RuneCursor) Advance() {
	if !rc.HasCurrent() {
		return
	}
	_, n := utf8.DecodeRuneInString(rc.text[rc.byteOff:])
	rc.byteOff += n
}

// Clone is part of interface enumerate.Enumerator.
func (rc *RuneCursor) Clone() enumerate.Enumerator[rune] {
	if rc == nil {
		return &RuneCursor{}
	}
	c := *rc
	return &c
}

// ByteOffset returns the current byte offset within the text.
func (rc *RuneCursor) ByteOffset() int {
	if rc == nil {
		return 0
	}
	return rc.byteOff
}
