package segments

import "github.com/bdewgo/automapper/edifact"

// UNH wraps the message header segment: the message's own reference
// number and its type/version/release/agency identification.
type UNH struct {
	seg *edifact.Segment
}

// ParseUNH wraps seg as a UNH, failing if seg isn't tagged UNH.
func ParseUNH(seg edifact.Segment) (UNH, error) {
	if err := requireTag(seg, "UNH"); err != nil {
		return UNH{}, err
	}
	return UNH{seg: &seg}, nil
}

// NewUNH builds a fresh UNH segment from its component parts.
func NewUNH(reference, messageType, version, release, agency, assignedID string) UNH {
	seg := edifact.NewSegment("UNH")
	seg.Set(0, reference)
	seg.SetAt(1, 0, messageType)
	seg.SetAt(1, 1, version)
	seg.SetAt(1, 2, release)
	seg.SetAt(1, 3, agency)
	seg.SetAt(1, 4, assignedID)
	return UNH{seg: seg}
}

// Segment returns the underlying *edifact.Segment.
func (u UNH) Segment() *edifact.Segment { return u.seg }

// Reference returns the message reference number (UNH element 0), which
// must match the corresponding UNT's reference.
func (u UNH) Reference() string { return u.seg.Value(0) }

// MessageType returns the message type identifier (UNH element 1,
// component 0), e.g. "UTILMD".
func (u UNH) MessageType() string { return u.seg.At(1, 0) }

// Version returns the message type version number (UNH element 1,
// component 1).
func (u UNH) Version() string { return u.seg.At(1, 1) }

// Release returns the message type release number (UNH element 1,
// component 2).
func (u UNH) Release() string { return u.seg.At(1, 2) }

// Agency returns the controlling agency code (UNH element 1,
// component 3).
func (u UNH) Agency() string { return u.seg.At(1, 3) }

// AssignedID returns the association assigned code, e.g. the BDEW
// format version (UNH element 1, component 4).
func (u UNH) AssignedID() string { return u.seg.At(1, 4) }
