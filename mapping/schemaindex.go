package mapping

import (
	"strings"

	"github.com/bdewgo/automapper/mig"
)

// elementRef is one resolved coordinate within a segment: its top-level
// element position and, for a composite member, its sub-element position.
type elementRef struct {
	idx    int
	sub    int
	hasSub bool
}

// segmentIndex indexes one segment tag's elements by their normalized
// identifier, plus composite members by (composite ID, member ID).
type segmentIndex struct {
	simple    map[string]elementRef
	composite map[string]map[string]elementRef
}

// SchemaIndex resolves named field-path components to ordinal coordinates
// for one MIG schema, built once and reused across every definition that
// shares the (format-version, message-variant) pair (spec §4.6).
type SchemaIndex struct {
	segments map[string]*segmentIndex
}

// BuildSchemaIndex walks every segment declaration reachable from schema
// (root-level and nested within any group, recursively) and indexes its
// elements. The first declaration seen for a given tag wins; a MIG does
// not redeclare a tag's element shape differently across groups.
func BuildSchemaIndex(schema *mig.Schema) *SchemaIndex {
	idx := &SchemaIndex{segments: make(map[string]*segmentIndex)}
	for _, s := range schema.RootSegments {
		idx.indexSegment(s)
	}
	for _, g := range schema.Groups {
		idx.indexGroup(g)
	}
	return idx
}

func (idx *SchemaIndex) indexGroup(g mig.GroupDecl) {
	for _, s := range g.Segments {
		idx.indexSegment(s)
	}
	for _, sub := range g.Groups {
		idx.indexGroup(sub)
	}
}

func (idx *SchemaIndex) indexSegment(s mig.SegmentDecl) {
	tag := strings.ToUpper(s.Tag)
	if _, exists := idx.segments[tag]; exists {
		return
	}
	si := &segmentIndex{
		simple:    make(map[string]elementRef),
		composite: make(map[string]map[string]elementRef),
	}
	for i, el := range s.Elements {
		if !el.Composite {
			si.simple[normalizeToken(el.ID)] = elementRef{idx: i}
			continue
		}
		members := make(map[string]elementRef, len(el.Components))
		for j, comp := range el.Components {
			members[normalizeToken(comp.ID)] = elementRef{idx: i, sub: j, hasSub: true}
		}
		si.composite[normalizeToken(el.ID)] = members
	}
	idx.segments[tag] = si
}

// resolveSimple looks up a bare element identifier within tag, e.g. "3225"
// directly at the segment's top level (no enclosing composite).
func (idx *SchemaIndex) resolveSimple(tag, token string) (elementRef, bool) {
	si, ok := idx.segments[strings.ToUpper(tag)]
	if !ok {
		return elementRef{}, false
	}
	ref, ok := si.simple[token]
	return ref, ok
}

// resolveComposite looks up a (composite, member) pair within tag, e.g.
// ("C517", "3225").
func (idx *SchemaIndex) resolveComposite(tag, compositeToken, memberToken string) (elementRef, bool) {
	si, ok := idx.segments[strings.ToUpper(tag)]
	if !ok {
		return elementRef{}, false
	}
	members, ok := si.composite[compositeToken]
	if !ok {
		return elementRef{}, false
	}
	ref, ok := members[memberToken]
	return ref, ok
}

// normalizeToken strips the MIG's named-path letter sigil ("d3225" -> the
// loader's own element ID "3225") while leaving composite identifiers,
// which retain their leading letter in the loader's own ID field ("c517"
// -> "C517"), untouched beyond upper-casing. The distinguishing rule: a
// simple data-element ID is pure digits in the MIG loader's output (the
// "D_" prefix is stripped entirely there), while a composite ID keeps its
// "C" (MIG XML names composites like C_C517, and mig.parseElement strips
// only the "C_" sigil). So: upper-case, and
// if what remains after a leading 'D' is all digits, drop the 'D'.
func normalizeToken(tok string) string {
	upper := strings.ToUpper(tok)
	if len(upper) > 1 && upper[0] == 'D' && isAllDigits(upper[1:]) {
		return upper[1:]
	}
	return upper
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
