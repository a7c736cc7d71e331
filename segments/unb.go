package segments

import "github.com/bdewgo/automapper/edifact"

// UNB wraps the interchange header segment: sender, recipient, and the
// preparation date/time and reference number used to populate
// mapping.Nachrichtendaten (spec §4.8 step 1).
type UNB struct {
	seg *edifact.Segment
}

// ParseUNB wraps seg as a UNB, failing if seg isn't tagged UNB.
func ParseUNB(seg edifact.Segment) (UNB, error) {
	if err := requireTag(seg, "UNB"); err != nil {
		return UNB{}, err
	}
	return UNB{seg: &seg}, nil
}

// NewUNB builds a fresh UNB segment from its component parts.
func NewUNB(sender, senderQualifier, recipient, recipientQualifier, date, time, reference string) UNB {
	seg := edifact.NewSegment("UNB")
	seg.SetAt(1, 0, sender)
	seg.SetAt(1, 1, senderQualifier)
	seg.SetAt(2, 0, recipient)
	seg.SetAt(2, 1, recipientQualifier)
	seg.SetAt(3, 0, date)
	seg.SetAt(3, 1, time)
	seg.Set(4, reference)
	return UNB{seg: seg}
}

// Segment returns the underlying *edifact.Segment.
func (u UNB) Segment() *edifact.Segment { return u.seg }

// Sender returns the sender identification (UNB element 1, component 0).
func (u UNB) Sender() string { return u.seg.At(1, 0) }

// SenderQualifier returns the sender identification's qualifier (UNB
// element 1, component 1), e.g. the BDEW code-list-1 qualifier.
func (u UNB) SenderQualifier() string { return u.seg.At(1, 1) }

// Recipient returns the recipient identification (UNB element 2,
// component 0).
func (u UNB) Recipient() string { return u.seg.At(2, 0) }

// RecipientQualifier returns the recipient identification's qualifier
// (UNB element 2, component 1).
func (u UNB) RecipientQualifier() string { return u.seg.At(2, 1) }

// Date returns the interchange preparation date (UNB element 3,
// component 0, YYMMDD).
func (u UNB) Date() string { return u.seg.At(3, 0) }

// Time returns the interchange preparation time (UNB element 3,
// component 1, HHMM).
func (u UNB) Time() string { return u.seg.At(3, 1) }

// Timestamp returns Date and Time concatenated, matching the
// nachrichtendaten.erstellungszeitpunkt shape consumed by the mapping
// engine (spec §3 Domain JSON).
func (u UNB) Timestamp() string { return u.Date() + u.Time() }

// Reference returns the interchange control reference (UNB element 4).
func (u UNB) Reference() string { return u.seg.Value(4) }
