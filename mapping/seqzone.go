package mapping

// seqZoneCompanionTags are the segment tags that, per the original
// automapper's ActiveSeqGroup routing (original_source
// crates/automapper-core/src/mappers/seq_groups.rs, SegmentHandler::
// can_handle), only belong inside a SEQ-delimited zone: CCI, CAV, PIA
// and QTY qualify or measure whatever SEQ most recently opened and are
// meaningless on their own. ApplyReverse drops a field targeting one of
// these tags unless a SEQ field already fired earlier in the same
// definition's Fields (resolving Open Question 2).
var seqZoneCompanionTags = map[string]bool{"CCI": true, "CAV": true, "PIA": true, "QTY": true}

// seqZoneTracker is explicit state carried by the reverse path while it
// reconstructs one group instance's segments: it flips true on a SEQ
// segment and false again on NAD/UNS, so ApplyReverse knows whether a
// CCI/CAV/PIA/QTY field belongs to the SEQ-delimited zone of the group
// it is currently writing or falls outside it and should be skipped.
type seqZoneTracker struct {
	inSeqZone bool
}

// observe updates the tracker as segTag is about to be written into the
// current group instance.
func (t *seqZoneTracker) observe(segTag string) {
	if segTag == "SEQ" {
		t.inSeqZone = true
	}
}

// leaveGroup resets the tracker when the reverse engine crosses a
// segment that closes a SEQ zone (NAD, UNS, or the start of the next
// group instance).
func (t *seqZoneTracker) leaveGroup() {
	t.inSeqZone = false
}

// inZone reports whether the tracker currently considers itself inside a
// SEQ-delimited zone.
func (t *seqZoneTracker) inZone() bool {
	return t.inSeqZone
}
