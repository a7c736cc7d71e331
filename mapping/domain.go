package mapping

import "github.com/bdewgo/automapper/edifact"

// Entity is one mapped business object's output: a plain JSON-shaped
// value tree (strings, numbers, nested maps, companion sub-objects).
// Dotted targets in a FieldMapping build nested maps here directly,
// matching spec.md §4.8 step 5 ("dotted targets create nested
// sub-objects").
type Entity map[string]interface{}

// Nachrichtendaten is the message-envelope entity derived from UNB (spec
// §3 Domain JSON): sender, receiver, timestamp, and reference.
type Nachrichtendaten struct {
	Absender   string `json:"absender"`
	Empfaenger string `json:"empfaenger"`
	Erstellt   string `json:"erstellungszeitpunkt"`
	Referenz   string `json:"referenznummer"`
}

// Transaktion is one transaction-group repetition's mapped output (spec
// §3, §4.8 step 2): its own stammdaten entities and its
// transaktionsdaten (prozessdaten/nachricht entities).
type Transaktion struct {
	Stammdaten        map[string]Entity `json:"stammdaten"`
	Transaktionsdaten map[string]Entity `json:"transaktionsdaten"`
}

// Nachricht is one UNH...UNT message's mapped output.
type Nachricht struct {
	UNHReferenz    string            `json:"unhReferenz"`
	NachrichtenTyp string            `json:"nachrichtenTyp"`
	Stammdaten     map[string]Entity `json:"stammdaten"`
	Transaktionen  []Transaktion     `json:"transaktionen"`

	// OriginalUNH and OriginalUNT carry this message's framing segments
	// exactly as split.Split parsed them. ReverseInterchange reinserts
	// them verbatim rather than reconstructing fresh ones (spec §4.8:
	// "re-inserting the UNH/UNT envelope segments verbatim from the
	// original parse"). Both are nil for a Nachricht that was never
	// parsed from a wire interchange (e.g. built by hand in a test or by
	// a caller assembling a message from scratch).
	OriginalUNH *edifact.Segment `json:"-"`
	OriginalUNT *edifact.Segment `json:"-"`
}

// Interchange is the full forward-mapping output for one EDIFACT
// interchange (spec §3 Domain JSON).
type Interchange struct {
	Nachrichtendaten Nachrichtendaten `json:"nachrichtendaten"`
	Nachrichten      []Nachricht      `json:"nachrichten"`
}
