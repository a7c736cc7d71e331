package assemble

import "github.com/bdewgo/automapper/edifact"

// Tree is the Assembled Tree produced by Assemble: a message's root-level
// segments (split around where the segment groups belong), its segment
// groups, and the cutoff marking where post-group trailer segments begin.
type Tree struct {
	RootSegments []edifact.Segment
	Groups       []Group

	// PostGroupStart is the index into RootSegments at which segments
	// matched after the groups (e.g. UNT) begin. Segments before this
	// index were matched before any group was attempted.
	PostGroupStart int
}

// Group is one segment-group instance within the tree: its MIG identifier
// and the ordered list of times it repeated in the input.
type Group struct {
	ID          string
	Repetitions []Repetition
}

// Repetition is a single occurrence of a segment group: its own segments,
// in MIG declaration order, and its nested child groups.
type Repetition struct {
	Segments []edifact.Segment
	Groups   []Group
}
