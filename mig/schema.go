package mig

// Schema is a message grammar for one (format-version, message-type)
// combination: an ordered list of root-level segments and a tree of
// segment-group declarations.
type Schema struct {
	FormatVersion string // Versionsnummer, e.g. "FV2504"
	MessageType   string // e.g. "UTILMD", from the M_ wrapper's sigil suffix
	RootSegments  []SegmentDecl
	Groups        []GroupDecl
}

// Status is a segment or group's AHB-independent base status as declared
// by the MIG itself.
type Status string

const (
	StatusMandatory  Status = "M"
	StatusConditional Status = "C"
	StatusOptional   Status = "O"
	StatusNotUsed    Status = "N"
	StatusUnknown    Status = ""
)

// SegmentDecl is one segment declaration within the MIG grammar: a tag, a
// status, a repetition ceiling, its data elements, and (optionally) the AHB
// segment number used by PID filtering.
type SegmentDecl struct {
	Tag                  string
	Description          string
	StatusStd            Status
	StatusSpecification  Status
	MaxRepStd            int
	MaxRepSpecification  int
	Number               string // AHB segment number; "" if the MIG doesn't carry one
	Elements             []ElementDecl
}

// EffectiveMaxRep returns the specification-level max repetition if set,
// else the standard-level one, else 1.
func (s SegmentDecl) EffectiveMaxRep() int {
	if s.MaxRepSpecification > 0 {
		return s.MaxRepSpecification
	}
	if s.MaxRepStd > 0 {
		return s.MaxRepStd
	}
	return 1
}

// ElementDecl is a data element (D_*) or composite (C_*) declaration.
// Composite elements carry one or more nested simple ElementDecls in
// Components; simple elements leave Components empty.
type ElementDecl struct {
	ID          string
	Description string
	Composite   bool
	Components  []ElementDecl
	Codes       map[string]string // enumerated code -> human description
}

// GroupDecl is one segment-group declaration: its identifier (e.g. "SG4"),
// status, repetition ceiling, its own segments (the first of which is the
// group's entry segment), and any nested groups.
type GroupDecl struct {
	ID                   string
	StatusStd            Status
	StatusSpecification  Status
	MaxRepStd            int
	MaxRepSpecification  int
	Segments             []SegmentDecl
	Groups               []GroupDecl
}

// EntrySegment returns the tag of the group's first declared segment, or ""
// if the group declares no segments (a malformed MIG per spec §4.7).
func (g GroupDecl) EntrySegment() string {
	if len(g.Segments) == 0 {
		return ""
	}
	return g.Segments[0].Tag
}

// EffectiveMaxRep mirrors SegmentDecl.EffectiveMaxRep for groups.
func (g GroupDecl) EffectiveMaxRep() int {
	if g.MaxRepSpecification > 0 {
		return g.MaxRepSpecification
	}
	if g.MaxRepStd > 0 {
		return g.MaxRepStd
	}
	return 1
}

// SegmentByTag returns the group's declared segment with the given tag
// (case-insensitive not required: tags are already normalized upper-case
// at load time), and whether it was found.
func (g GroupDecl) SegmentByTag(tag string) (SegmentDecl, bool) {
	for _, s := range g.Segments {
		if s.Tag == tag {
			return s, true
		}
	}
	return SegmentDecl{}, false
}

// GroupByID returns the nested group with the given identifier, and
// whether it was found.
func (g GroupDecl) GroupByID(id string) (GroupDecl, bool) {
	for _, sub := range g.Groups {
		if sub.ID == id {
			return sub, true
		}
	}
	return GroupDecl{}, false
}
