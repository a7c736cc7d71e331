// Package assemble runs the recursive-descent pass (spec §4.7) that
// consumes a flat, already-split segment stream against a PID-filtered
// mig.Schema and produces a Tree: an ordered list of root-level segments,
// an ordered list of segment groups (each with its own repetitions and
// nested child groups), and the post-group cutoff index that lets the
// disassembler place trailer segments correctly.
//
// The assembler advances a single monotone cursor with one-segment
// lookahead and never backtracks: a MIG segment or group declaration that
// doesn't match the current input segment is simply treated as absent.
// PID filtering (see the pidfilter package) is what makes this safe — by
// the time a schema reaches Assemble, no two sibling groups share an entry
// tag.
package assemble
