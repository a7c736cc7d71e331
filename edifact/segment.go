package edifact

import "strings"

// Component is a single value within an element. When produced by Tokenize
// it is, whenever possible, a direct sub-slice of the tokenizer's input —
// see the zero-copy contract in doc.go.
type Component []byte

// String returns the component's value as a string. This always allocates
// (Go string conversion copies), matching the documented "materialize
// explicitly" escape hatch.
func (c Component) String() string { return string(c) }

// Element is an ordered list of components. An Element with exactly one
// Component is a simple data element; two or more makes it a composite.
type Element []Component

// Value returns the first component's string value, or "" if the element
// has no components. This is the common case: reading a simple element.
func (e Element) Value() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].String()
}

// At returns the sub-index'th component (0-based), or "" if absent.
func (e Element) At(sub int) string {
	if sub < 0 || sub >= len(e) {
		return ""
	}
	return e[sub].String()
}

// Segment is a single EDIFACT segment: a three-character tag plus its
// ordered elements. Tag is always compared upper-cased; a tokenized
// segment's Tag is already upper-case since EDIFACT tags are not
// case-sensitive and downstream matching relies on that normalization.
type Segment struct {
	Tag      string
	Elements []Element

	// Index is the segment's 0-based position within the message body it
	// was tokenized from, used only for diagnostics.
	Index int
}

// NewSegment creates an empty segment with the given (upper-cased) tag.
func NewSegment(tag string) *Segment {
	return &Segment{Tag: strings.ToUpper(tag)}
}

// Element returns the element at the given 0-based index, or a nil Element
// (which behaves like an empty one) if the segment is shorter.
func (s *Segment) Element(idx int) Element {
	if s == nil || idx < 0 || idx >= len(s.Elements) {
		return nil
	}
	return s.Elements[idx]
}

// Value returns the first component of the element at idx, or "".
func (s *Segment) Value(idx int) string {
	return s.Element(idx).Value()
}

// At returns the sub-index'th component of the element at idx, or "".
func (s *Segment) At(idx, sub int) string {
	return s.Element(idx).At(sub)
}

// Set grows the segment's element list as needed and writes value as the
// element at idx's 0th component, discarding any existing components
// beyond it only if it must allocate a new Element.
func (s *Segment) Set(idx int, value string) {
	s.ensure(idx)
	if len(s.Elements[idx]) == 0 {
		s.Elements[idx] = Element{Component(value)}
		return
	}
	s.Elements[idx][0] = Component(value)
}

// SetAt grows the segment's element and component lists as needed and
// writes value at element idx, component sub.
func (s *Segment) SetAt(idx, sub int, value string) {
	s.ensure(idx)
	el := s.Elements[idx]
	for len(el) <= sub {
		el = append(el, Component(""))
	}
	el[sub] = Component(value)
	s.Elements[idx] = el
}

func (s *Segment) ensure(idx int) {
	for len(s.Elements) <= idx {
		s.Elements = append(s.Elements, nil)
	}
}

// Clone returns a deep copy of s whose byte slices do not alias any
// tokenizer input buffer. Callers that retain a Segment beyond the
// lifetime of the buffer passed to Tokenize must call Clone (or otherwise
// materialize) first.
func (s *Segment) Clone() *Segment {
	if s == nil {
		return nil
	}
	out := &Segment{Tag: s.Tag, Index: s.Index, Elements: make([]Element, len(s.Elements))}
	for i, el := range s.Elements {
		clonedEl := make(Element, len(el))
		for j, c := range el {
			cp := make(Component, len(c))
			copy(cp, c)
			clonedEl[j] = cp
		}
		out.Elements[i] = clonedEl
	}
	return out
}

// MatchesQualifier reports whether the segment's first element's first
// component equals qualifier — the EDIFACT convention for narrowing a
// multi-variant segment tag (e.g. "LOC+Z16" vs "LOC+Z17").
func (s *Segment) MatchesQualifier(qualifier string) bool {
	return s.Value(0) == qualifier
}
