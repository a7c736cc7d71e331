package assemble

import (
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/mig"
)

// cursor is the assembler's monotone read position over the input segment
// stream. It never moves backwards.
type cursor struct {
	segments []edifact.Segment
	pos      int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.segments) }

func (c *cursor) tag() string {
	if c.atEnd() {
		return ""
	}
	return c.segments[c.pos].Tag
}

func (c *cursor) consume() edifact.Segment {
	s := c.segments[c.pos]
	c.pos++
	return s
}

// Assemble consumes body (the segment stream between a message's UNH and
// UNT, or any flat stream sharing its grammar) against schema and produces
// a Tree, per spec §4.7. schema should already be PID-filtered so that no
// two sibling groups share an entry tag.
func Assemble(body []edifact.Segment, schema *mig.Schema) (*Tree, error) {
	cur := &cursor{segments: body}
	tree := &Tree{}

	matched := make([]bool, len(schema.RootSegments))

	// Step 1: pre-group root segments, one lookahead attempt per
	// declaration in MIG order.
	for i, decl := range schema.RootSegments {
		if cur.tag() == decl.Tag {
			seg := cur.consume()
			tree.RootSegments = append(tree.RootSegments, seg)
			matched[i] = true
		}
	}

	// Step 2: groups, in MIG order.
	for _, g := range schema.Groups {
		group, ok, err := consumeGroup(cur, g)
		if err != nil {
			return nil, err
		}
		if ok {
			tree.Groups = append(tree.Groups, *group)
		}
	}
	tree.PostGroupStart = len(tree.RootSegments)

	// Step 3: post-group root segments, re-scanning declarations that
	// weren't matched in step 1.
	for i, decl := range schema.RootSegments {
		if matched[i] {
			continue
		}
		if cur.tag() == decl.Tag {
			seg := cur.consume()
			tree.RootSegments = append(tree.RootSegments, seg)
			matched[i] = true
		}
	}

	return tree, nil
}

// consumeGroup matches zero or more repetitions of g against cur, starting
// at the current position. It returns ok=false if the group's entry tag
// doesn't match the current input segment (the group is absent).
func consumeGroup(cur *cursor, g mig.GroupDecl) (*Group, bool, error) {
	entryTag := g.EntrySegment()
	if entryTag == "" {
		return nil, false, &SchemaError{GroupID: g.ID, Cause: ErrEmptyGroup}
	}
	if cur.tag() != entryTag {
		return nil, false, nil
	}

	group := &Group{ID: g.ID}
	for cur.tag() == entryTag {
		rep, err := consumeRepetition(cur, g)
		if err != nil {
			return nil, false, err
		}
		group.Repetitions = append(group.Repetitions, rep)
	}
	return group, true, nil
}

// consumeRepetition assembles a single occurrence of g's segments (in MIG
// order, one lookahead per declared segment) followed by its nested
// groups.
func consumeRepetition(cur *cursor, g mig.GroupDecl) (Repetition, error) {
	var rep Repetition
	for _, decl := range g.Segments {
		if cur.tag() == decl.Tag {
			rep.Segments = append(rep.Segments, cur.consume())
		}
	}
	for _, sub := range g.Groups {
		child, ok, err := consumeGroup(cur, sub)
		if err != nil {
			return Repetition{}, err
		}
		if ok {
			rep.Groups = append(rep.Groups, *child)
		}
	}
	return rep, nil
}
