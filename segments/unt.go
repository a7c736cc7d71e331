package segments

import (
	"strconv"

	"github.com/bdewgo/automapper/edifact"
)

// UNT wraps the message trailer segment: the segment count the message
// body carried and its reference number (which must match the opening
// UNH's).
type UNT struct {
	seg *edifact.Segment
}

// ParseUNT wraps seg as a UNT, failing if seg isn't tagged UNT.
func ParseUNT(seg edifact.Segment) (UNT, error) {
	if err := requireTag(seg, "UNT"); err != nil {
		return UNT{}, err
	}
	return UNT{seg: &seg}, nil
}

// NewUNT builds a fresh UNT segment from its component parts.
func NewUNT(segmentCount int, reference string) UNT {
	seg := edifact.NewSegment("UNT")
	seg.Set(0, strconv.Itoa(segmentCount))
	seg.Set(1, reference)
	return UNT{seg: seg}
}

// Segment returns the underlying *edifact.Segment.
func (u UNT) Segment() *edifact.Segment { return u.seg }

// SegmentCount returns the number of segments in the message, UNH and UNT
// inclusive (UNT element 0).
func (u UNT) SegmentCount() (int, error) { return atoi(u.seg.Value(0)) }

// Reference returns the message reference number (UNT element 1).
func (u UNT) Reference() string { return u.seg.Value(1) }
