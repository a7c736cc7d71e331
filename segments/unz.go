package segments

import (
	"strconv"

	"github.com/bdewgo/automapper/edifact"
)

// UNZ wraps the interchange trailer segment: the count of messages the
// interchange carried and its reference number (which must match the
// opening UNB's).
type UNZ struct {
	seg *edifact.Segment
}

// ParseUNZ wraps seg as a UNZ, failing if seg isn't tagged UNZ.
func ParseUNZ(seg edifact.Segment) (UNZ, error) {
	if err := requireTag(seg, "UNZ"); err != nil {
		return UNZ{}, err
	}
	return UNZ{seg: &seg}, nil
}

// NewUNZ builds a fresh UNZ segment from its component parts.
func NewUNZ(messageCount int, reference string) UNZ {
	seg := edifact.NewSegment("UNZ")
	seg.Set(0, strconv.Itoa(messageCount))
	seg.Set(1, reference)
	return UNZ{seg: seg}
}

// Segment returns the underlying *edifact.Segment.
func (u UNZ) Segment() *edifact.Segment { return u.seg }

// MessageCount returns the number of messages in the interchange (UNZ
// element 0).
func (u UNZ) MessageCount() (int, error) { return atoi(u.seg.Value(0)) }

// Reference returns the interchange control reference (UNZ element 1).
func (u UNZ) Reference() string { return u.seg.Value(1) }
