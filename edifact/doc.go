// Package edifact provides the core types shared by every stage of the
// EDIFACT ⇄ BO4E translation pipeline: Delimiters, Segment, and the
// tokenizer that recovers both from a raw interchange.
//
// # Message structure
//
// An EDIFACT interchange is a flat sequence of segments:
//
//	UNA:+.? 'UNB+UNOC:3+SENDER+RECEIVER+DATE:TIME+REF'UNH+1+UTILMD:D:11A:UN:S2.1'...UNT+n+1'UNZ+1+REF'
//
// A Segment carries a three-character tag and an ordered list of elements;
// an element with two or more components is a composite, one with a single
// component is a simple data element. Component values are plain strings —
// EDIFACT, unlike HL7, has no sub-component layer.
//
// # Delimiters
//
// Five octets control tokenization: component separator (:), element
// separator (+), decimal mark (.), release character (?), and segment
// terminator ('). They default to the values above but may be overridden by
// a leading UNA service-string advice segment. Whatever delimiter set parsed
// an interchange must be reused to render it, or the output will not be
// byte-identical.
//
// # Escape sequences
//
// A single release character prefixes an otherwise-significant octet to
// make it literal. Unlike HL7's multi-character \Xhh\ escapes, EDIFACT
// escaping is always exactly two characters: the release character and the
// literal octet it protects. See the internal/escape package for the
// encode/decode pair.
//
// # Zero-copy contract
//
// Tokenize returns Segments whose Components are []byte values. Whenever a
// component contains no release-character escape, its bytes are a direct
// sub-slice of the caller's input buffer — no copy, no reorder. Only a
// component that actually contains an escaped octet is built into a fresh
// buffer, since unescaping requires dropping the release character as it is
// read. Callers that need a Segment to outlive the input buffer must call
// Segment.Clone to materialize owned copies explicitly.
package edifact
