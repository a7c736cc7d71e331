// Package mapping implements the declarative, bidirectional field-mapping
// engine (spec §4.6, §4.8): it loads a PID mapping bundle of TOML
// definition tables, resolves each definition's EDIFACT field paths to
// ordinal (element, sub-element) coordinates against a PID schema index,
// and evaluates definitions against an assemble.Tree in either direction —
// forward into domain JSON entities, reverse from domain JSON back into
// tree fragments ready for disassemble.
//
// A Definition is immutable once loaded; a Bundle holds the Definitions
// for one (format-version, message-variant) combination, split per PID,
// and is safe for concurrent forward/reverse calls, since none of them
// mutates a Definition (spec §4.8 "Concurrency").
package mapping
