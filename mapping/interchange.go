package mapping

import (
	"github.com/bdewgo/automapper/assemble"
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/mig"
	"github.com/bdewgo/automapper/segments"
	"github.com/bdewgo/automapper/split"
)

// MapInterchange runs the full forward pipeline for one split interchange
// (spec §4.8 step 1): UNB populates Nachrichtendaten, and each message
// unit is assembled against schema and mapped via MapMessage into one
// Nachricht, carrying its UNH reference and message type along.
//
// schema must already be PID-filtered for the workflow that
// messageDefs/transactionDefs target; every message unit in ic is
// assembled and mapped against the same schema/definition set, matching
// this package's existing one-PID-per-call shape (callers handling an
// interchange mixing multiple Prüfidentifikatoren call MapInterchange
// once per PID and merge the results).
func MapInterchange(ic *split.Interchange, schema *mig.Schema, messageDefs, transactionDefs []*Definition, transactionGroupID string, delims edifact.Delimiters) (Interchange, error) {
	var out Interchange

	if ic.UNB != nil {
		unb, err := segments.ParseUNB(*ic.UNB)
		if err != nil {
			return Interchange{}, err
		}
		out.Nachrichtendaten = Nachrichtendaten{
			Absender:   unb.Sender(),
			Empfaenger: unb.Recipient(),
			Erstellt:   unb.Timestamp(),
			Referenz:   unb.Reference(),
		}
	}

	for _, chunk := range ic.Messages {
		n, err := mapMessageChunk(chunk, schema, messageDefs, transactionDefs, transactionGroupID, delims)
		if err != nil {
			return Interchange{}, err
		}
		out.Nachrichten = append(out.Nachrichten, n)
	}

	return out, nil
}

func mapMessageChunk(chunk split.MessageChunk, schema *mig.Schema, messageDefs, transactionDefs []*Definition, transactionGroupID string, delims edifact.Delimiters) (Nachricht, error) {
	tree, err := assemble.Assemble(chunk.Body, schema)
	if err != nil {
		return Nachricht{}, err
	}

	n, err := MapMessage(messageDefs, transactionDefs, tree, transactionGroupID, delims)
	if err != nil {
		return Nachricht{}, err
	}

	if chunk.Header != nil {
		unh, err := segments.ParseUNH(*chunk.Header)
		if err != nil {
			return Nachricht{}, err
		}
		n.UNHReferenz = unh.Reference()
		n.NachrichtenTyp = unh.MessageType()

		header := *chunk.Header
		n.OriginalUNH = &header
	}
	if chunk.Trailer != nil {
		trailer := *chunk.Trailer
		n.OriginalUNT = &trailer
	}

	return n, nil
}

// ReverseInterchange is the inverse of MapInterchange: it rebuilds a
// split.Interchange's worth of assembled trees — one per Nachricht — and
// the UNB/UNH/UNT/UNZ framing segments bracketing them, ready for
// disassemble.Disassemble and render.Render.
//
// Per spec §4.8, each message's UNH and UNT are reinserted verbatim from
// msg.OriginalUNH/OriginalUNT when the Nachricht carries them (i.e. it
// came from MapInterchange parsing an actual wire interchange) — version,
// release, agency and assignedID are preserved exactly, and UNT's segment
// count is the original trailer's, not recomputed. Only a Nachricht with
// no original framing (built by a caller from scratch) falls back to
// synthesizing fresh UNH/UNT from its own fields; segmentsPerMessage then
// supplies that synthesized UNT's segment count (spec §4.2: UNT's count is
// UNH..UNT inclusive), defaulting to 0 when the caller supplies none.
func ReverseInterchange(n Interchange, schema *mig.Schema, messageDefs, transactionDefs []*Definition, transactionGroupID string, segmentsPerMessage []int) (*split.Interchange, []*assemble.Tree) {
	ic := &split.Interchange{}

	if n.Nachrichtendaten != (Nachrichtendaten{}) {
		unb := segments.NewUNB(n.Nachrichtendaten.Absender, "", n.Nachrichtendaten.Empfaenger, "", "", "", n.Nachrichtendaten.Referenz)
		if len(n.Nachrichtendaten.Erstellt) >= 6 {
			unbSeg := unb.Segment()
			unbSeg.SetAt(3, 0, n.Nachrichtendaten.Erstellt[:6])
			unbSeg.SetAt(3, 1, n.Nachrichtendaten.Erstellt[6:])
		}
		seg := *unb.Segment()
		ic.UNB = &seg
	}

	trees := make([]*assemble.Tree, len(n.Nachrichten))
	for i, msg := range n.Nachrichten {
		tree := ReverseMessage(messageDefs, transactionDefs, msg, schema, transactionGroupID)
		trees[i] = tree

		var unhSeg, untSeg edifact.Segment
		if msg.OriginalUNH != nil {
			unhSeg = *msg.OriginalUNH
		} else {
			unhSeg = *segments.NewUNH(msg.UNHReferenz, msg.NachrichtenTyp, "", "", "", "").Segment()
		}
		if msg.OriginalUNT != nil {
			untSeg = *msg.OriginalUNT
		} else {
			count := 0
			if i < len(segmentsPerMessage) {
				count = segmentsPerMessage[i]
			}
			untSeg = *segments.NewUNT(count, msg.UNHReferenz).Segment()
		}

		ic.Messages = append(ic.Messages, split.MessageChunk{
			Header:  &unhSeg,
			Trailer: &untSeg,
		})
	}

	if len(n.Nachrichten) > 0 {
		unz := *segments.NewUNZ(len(n.Nachrichten), n.Nachrichtendaten.Referenz).Segment()
		ic.UNZ = &unz
	}

	return ic, trees
}
