// Package segments provides typed accessors for the EDIFACT
// interchange-framing segments: UNB (interchange header), UNH (message
// header), UNT (message trailer), and UNZ (interchange trailer).
//
// Each type wraps an *edifact.Segment with named field accessors, so the
// mapping engine's interchange pipeline (spec §4.8 step 1) can read
// sender/recipient/timestamp/reference without hand-rolled index
// arithmetic at the call site. This mirrors the teacher's segments
// package, which gives typed accessors for HL7's MSH/PID/OBX/ORC/PV1;
// here the only segments worth a typed wrapper are the four that carry
// interchange/message framing rather than business data (everything else
// flows entirely through the mapping engine's path-resolution machinery
// instead).
//
// # Usage
//
//	// chunk is a split.MessageChunk; its Header is the message's UNH.
//	if chunk.Header == nil {
//	    return errors.New("UNH segment not found")
//	}
//	unh, err := segments.ParseUNH(*chunk.Header)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("message type:", unh.MessageType())
package segments
