package edifact

// Default EDIFACT delimiter octets, used when no UNA service-string advice
// is present at the start of the interchange.
const (
	DefaultComponentSeparator byte = ':'
	DefaultElementSeparator   byte = '+'
	DefaultDecimalMark        byte = '.'
	DefaultReleaseCharacter   byte = '?'
	DefaultSegmentTerminator  byte = '\''
)

// una is the literal tag of the service-string advice segment.
const una = "UNA"

// unaLength is the total byte length of a UNA advice: the 3-byte tag plus
// the six delimiter octets.
const unaLength = 9

// Delimiters holds the five octets that control EDIFACT tokenization and
// rendering. They must be captured at parse time (from an optional leading
// UNA segment) and reused verbatim when re-serializing, or the byte-faithful
// round-trip invariant (spec §8) breaks.
type Delimiters struct {
	Component byte // ':' — separates components within a composite element
	Element   byte // '+' — separates elements within a segment
	Decimal   byte // '.' — decimal mark, passed through unexamined by the tokenizer
	Release   byte // '?' — escapes the following octet
	Terminator byte // '\'' — ends a segment
}

// DefaultDelimiters returns the standard EDIFACT delimiter set.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Component:  DefaultComponentSeparator,
		Element:    DefaultElementSeparator,
		Decimal:    DefaultDecimalMark,
		Release:    DefaultReleaseCharacter,
		Terminator: DefaultSegmentTerminator,
	}
}

// IsDefault reports whether d equals the standard delimiter set. The
// renderer uses this to decide whether a UNA advice must be emitted.
func (d Delimiters) IsDefault() bool {
	return d == DefaultDelimiters()
}

// special reports whether b is one of the four delimiter octets that must
// never appear literally in a rendered component (the decimal mark is not
// one of them).
func (d Delimiters) special(b byte) bool {
	return b == d.Component || b == d.Element || b == d.Release || b == d.Terminator
}

// ParseUNA recovers a Delimiters value from a leading "UNA" service-string
// advice. data must begin with the 3-byte literal "UNA"; the following six
// octets are, in order: component separator, element separator, decimal
// mark, release character, a reserved octet (ignored), and segment
// terminator. Returns the parsed Delimiters and the number of bytes
// consumed (always unaLength on success).
func ParseUNA(data []byte) (Delimiters, int, error) {
	if len(data) == 0 {
		return Delimiters{}, 0, ErrEmptyInput
	}
	if len(data) < unaLength || string(data[:3]) != una {
		return Delimiters{}, 0, ErrTruncatedUNA
	}
	d := Delimiters{
		Component:  data[3],
		Element:    data[4],
		Decimal:    data[5],
		Release:    data[6],
		Terminator: data[8],
	}
	return d, unaLength, nil
}

// HasUNA reports whether data begins with a UNA service-string advice.
func HasUNA(data []byte) bool {
	return len(data) >= 3 && string(data[:3]) == una
}

// RenderUNA reconstructs the 9-byte UNA advice for d, including the
// reserved (6th) octet which EDIFACT fixes at a space.
func RenderUNA(d Delimiters) []byte {
	return []byte{
		'U', 'N', 'A',
		d.Component,
		d.Element,
		d.Decimal,
		d.Release,
		' ',
		d.Terminator,
	}
}
