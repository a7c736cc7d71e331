package render

import (
	"bytes"

	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/internal/escape"
)

// Render serializes segments into EDIFACT bytes using delims. A UNA advice
// is prepended when delims differs from edifact.DefaultDelimiters; a
// segment already tagged "UNA" in segments is skipped, since Render always
// regenerates it itself from delims to guarantee the two never disagree.
func Render(segments []edifact.Segment, delims edifact.Delimiters) []byte {
	esc := escape.New(delims)

	var buf bytes.Buffer
	if !delims.IsDefault() {
		buf.Write(edifact.RenderUNA(delims))
	}

	for _, seg := range segments {
		if seg.Tag == "UNA" {
			continue
		}
		writeSegment(&buf, seg, delims, esc)
	}

	return buf.Bytes()
}

// writeSegment appends one rendered segment, including its terminator, to
// buf.
func writeSegment(buf *bytes.Buffer, seg edifact.Segment, delims edifact.Delimiters, esc *escape.Escaper) {
	buf.WriteString(seg.Tag)

	elements := trimTrailingEmptyElements(seg.Elements)
	for _, el := range elements {
		buf.WriteByte(delims.Element)
		writeElement(buf, el, delims, esc)
	}

	buf.WriteByte(delims.Terminator)
}

func writeElement(buf *bytes.Buffer, el edifact.Element, delims edifact.Delimiters, esc *escape.Escaper) {
	components := trimTrailingEmptyComponents(el)
	for i, c := range components {
		if i > 0 {
			buf.WriteByte(delims.Component)
		}
		buf.Write(esc.Escape(c))
	}
}

// trimTrailingEmptyElements drops trailing elements that have no
// components, or whose components are all empty — spec §4.10 "trailing
// empty elements/components are elided".
func trimTrailingEmptyElements(elements []edifact.Element) []edifact.Element {
	end := len(elements)
	for end > 0 && isEmptyElement(elements[end-1]) {
		end--
	}
	return elements[:end]
}

func isEmptyElement(el edifact.Element) bool {
	if len(el) == 0 {
		return true
	}
	for _, c := range el {
		if len(c) != 0 {
			return false
		}
	}
	return true
}

func trimTrailingEmptyComponents(el edifact.Element) []edifact.Component {
	end := len(el)
	for end > 0 && len(el[end-1]) == 0 {
		end--
	}
	return el[:end]
}
