// Package escape provides EDIFACT release-character escaping and
// unescaping. Unlike HL7's multi-character \Xhh\ escape sequences, EDIFACT
// escaping is always exactly two bytes: the release character followed by
// the literal octet it protects.
package escape

import (
	"strings"

	"github.com/bdewgo/automapper/edifact"
)

// Escaper escapes and unescapes EDIFACT component values for a given
// delimiter set.
type Escaper struct {
	delims edifact.Delimiters
}

// New creates an Escaper bound to delims.
func New(delims edifact.Delimiters) *Escaper {
	return &Escaper{delims: delims}
}

// NeedsEscape reports whether b must be preceded by the release character
// to appear literally in a rendered component: the release character
// itself, or any of the four structural delimiters.
func (e *Escaper) NeedsEscape(b byte) bool {
	d := e.delims
	return b == d.Release || b == d.Component || b == d.Element || b == d.Terminator
}

// Escape returns value with every release/component/element/terminator
// octet prefixed by the release character.
func (e *Escaper) Escape(value []byte) []byte {
	needs := false
	for _, b := range value {
		if e.NeedsEscape(b) {
			needs = true
			break
		}
	}
	if !needs {
		return value
	}

	out := make([]byte, 0, len(value)+4)
	for _, b := range value {
		if e.NeedsEscape(b) {
			out = append(out, e.delims.Release)
		}
		out = append(out, b)
	}
	return out
}

// EscapeString is a string-convenience wrapper around Escape.
func (e *Escaper) EscapeString(value string) string {
	if !strings.ContainsAny(value, e.specialChars()) {
		return value
	}
	return string(e.Escape([]byte(value)))
}

// Unescape strips release-character prefixes from value, returning the
// literal byte sequence. A trailing, unpaired release character is passed
// through unchanged — the tokenizer never produces one, but a
// hand-constructed tree might.
func (e *Escaper) Unescape(value []byte) []byte {
	idx := indexByte(value, e.delims.Release)
	if idx < 0 {
		return value
	}

	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == e.delims.Release && i+1 < len(value) {
			out = append(out, value[i+1])
			i++
			continue
		}
		out = append(out, value[i])
	}
	return out
}

// UnescapeString is a string-convenience wrapper around Unescape.
func (e *Escaper) UnescapeString(value string) string {
	if !strings.ContainsRune(value, rune(e.delims.Release)) {
		return value
	}
	return string(e.Unescape([]byte(value)))
}

func (e *Escaper) specialChars() string {
	d := e.delims
	return string([]byte{d.Release, d.Component, d.Element, d.Terminator})
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
