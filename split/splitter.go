package split

import (
	"errors"
	"fmt"

	"github.com/bdewgo/automapper/edifact"
)

// Sentinel errors raised by Split.
var (
	// ErrInvalidFraming indicates a UNH segment was not closed by a
	// matching UNT before the next UNH began.
	ErrInvalidFraming = errors.New("UNH without matching UNT")
	// ErrUnbalancedTrailer indicates a UNT segment appeared with no
	// preceding open UNH.
	ErrUnbalancedTrailer = errors.New("UNT without preceding UNH")
)

// FramingError wraps ErrInvalidFraming/ErrUnbalancedTrailer with the
// segment index at which the imbalance was detected.
type FramingError struct {
	Segment int
	Cause   error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("split: framing error at segment %d: %v", e.Segment, e.Cause)
}

func (e *FramingError) Unwrap() error { return e.Cause }

// MessageChunk is one UNH...UNT message unit: its header, its body
// segments in order, and its trailer.
type MessageChunk struct {
	Header *edifact.Segment   // the UNH segment
	Body   []edifact.Segment  // segments strictly between UNH and UNT
	Trailer *edifact.Segment  // the UNT segment
}

// Interchange is the result of splitting a tokenized segment stream: the
// envelope (UNA, if present, and UNB), the message units it contains, and
// the closing UNZ. UNB and UNZ are nil when the input is a bare message
// with no interchange envelope — a non-fatal condition (spec §4.2).
type Interchange struct {
	UNA      *edifact.Segment
	UNB      *edifact.Segment
	Messages []MessageChunk
	UNZ      *edifact.Segment
}

// Split frames a tokenized segment stream. It reports ErrInvalidFraming
// wrapped in a *FramingError when a UNH is not closed by a UNT before the
// next UNH (or end of input), and ErrUnbalancedTrailer when a UNT appears
// without an open UNH. A missing UNB or UNZ is not an error.
func Split(segments []edifact.Segment) (*Interchange, error) {
	ic := &Interchange{}

	var open *edifact.Segment
	var body []edifact.Segment

	for i := range segments {
		seg := segments[i]
		switch seg.Tag {
		case "UNA":
			s := seg
			ic.UNA = &s
		case "UNB":
			s := seg
			ic.UNB = &s
		case "UNZ":
			s := seg
			ic.UNZ = &s
		case "UNH":
			if open != nil {
				return nil, &FramingError{Segment: seg.Index, Cause: ErrInvalidFraming}
			}
			s := seg
			open = &s
			body = nil
		case "UNT":
			if open == nil {
				return nil, &FramingError{Segment: seg.Index, Cause: ErrUnbalancedTrailer}
			}
			s := seg
			ic.Messages = append(ic.Messages, MessageChunk{
				Header:  open,
				Body:    body,
				Trailer: &s,
			})
			open = nil
			body = nil
		default:
			if open != nil {
				body = append(body, seg)
			}
			// Segments outside any UNH/UNT and not UNA/UNB/UNZ are
			// ignored: they cannot occur in a well-formed interchange,
			// and the splitter is tolerant by design (spec §4.2 only
			// defines failure for UNH/UNT imbalance).
		}
	}

	if open != nil {
		return nil, &FramingError{Segment: open.Index, Cause: ErrInvalidFraming}
	}

	return ic, nil
}
