// Package disassemble inverts assemble: it walks an assemble.Tree against
// a (possibly PID-filtered) mig.Schema and flattens it back into a
// canonical segment sequence (spec §4.9) — root segments before the
// post-group cutoff, then each group in MIG order (each group's
// repetitions in input order, each repetition's own segments followed by
// its nested groups recursively), then the remaining root segments.
//
// Disassemble trusts the tree's own structure over the schema for segment
// content; the schema is consulted only for group ordering, since a
// reverse-mapped tree may contain repetitions or groups the schema's
// declaration order must still place correctly.
package disassemble
