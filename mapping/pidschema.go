package mapping

import (
	"encoding/json"
	"strings"
)

// PIDSchema is the decoded shape of the PID Schema JSON external artifact
// (spec §6): a generated index from the MIG, consulted to resolve named
// field paths. Only the parts the core reads are modeled.
type PIDSchema struct {
	Fields map[string]PIDSchemaGroup `json:"fields"`
}

// PIDSchemaGroup is one group entry within a PID Schema JSON document.
type PIDSchemaGroup struct {
	SourceGroup   string             `json:"source_group"`
	Discriminator string             `json:"discriminator,omitempty"`
	Segments      []PIDSchemaSegment `json:"segments"`
	Children      []PIDSchemaGroup   `json:"children,omitempty"`
}

// PIDSchemaSegment is one segment entry within a PID schema group.
type PIDSchemaSegment struct {
	ID       string                `json:"id"`
	Elements []PIDSchemaElement    `json:"elements"`
}

// PIDSchemaElement is one element entry: either a direct simple element
// (ID set, Components empty) or a composite (Components populated).
type PIDSchemaElement struct {
	Index      int                `json:"index"`
	ID         string             `json:"id"`
	Type       string             `json:"type,omitempty"`
	Codes      []string           `json:"codes,omitempty"`
	Components []PIDSchemaElement `json:"components,omitempty"`
}

// DecodePIDSchema parses the PID Schema JSON external artifact (spec §6).
// No third-party JSON library is wired here: none of the example repos in
// the pack demonstrate one in working form, and encoding/json's
// struct-tag decode is the unmarked idiomatic default for this shape.
func DecodePIDSchema(data []byte) (*PIDSchema, error) {
	var ps PIDSchema
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, &DefinitionError{Path: "pid-schema.json", Cause: err}
	}
	return &ps, nil
}

// BuildIndexFromPIDSchema builds the same SchemaIndex shape BuildSchemaIndex
// produces from a mig.Schema, but from an externally generated PID Schema
// JSON document instead — the path-resolution contract (spec §4.6) is
// agnostic to which of the two schema representations supplied it, since
// both ultimately describe "segment tag -> element/composite -> ordinal
// position".
func BuildIndexFromPIDSchema(ps *PIDSchema) *SchemaIndex {
	idx := &SchemaIndex{segments: make(map[string]*segmentIndex)}
	for _, group := range ps.Fields {
		indexPIDSchemaGroup(idx, group)
	}
	return idx
}

func indexPIDSchemaGroup(idx *SchemaIndex, group PIDSchemaGroup) {
	for _, seg := range group.Segments {
		indexPIDSchemaSegment(idx, seg)
	}
	for _, child := range group.Children {
		indexPIDSchemaGroup(idx, child)
	}
}

func indexPIDSchemaSegment(idx *SchemaIndex, seg PIDSchemaSegment) {
	tag := strings.ToUpper(seg.ID)
	if tag == "" {
		return
	}
	if _, exists := idx.segments[tag]; exists {
		return
	}
	si := &segmentIndex{
		simple:    make(map[string]elementRef),
		composite: make(map[string]map[string]elementRef),
	}
	for _, el := range seg.Elements {
		if len(el.Components) == 0 {
			si.simple[normalizeToken(el.ID)] = elementRef{idx: el.Index}
			continue
		}
		members := make(map[string]elementRef, len(el.Components))
		for _, comp := range el.Components {
			members[normalizeToken(comp.ID)] = elementRef{idx: el.Index, sub: comp.Index, hasSub: true}
		}
		si.composite[normalizeToken(el.ID)] = members
	}
	idx.segments[tag] = si
}
