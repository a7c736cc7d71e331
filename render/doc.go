// Package render serializes a segment sequence back into EDIFACT bytes
// (spec §4.10), the inverse of edifact.Tokenize. It escapes delimiter
// octets, elides trailing empty elements/components, and prepends a
// reconstructed UNA advice whenever the delimiter set differs from the
// EDIFACT defaults.
package render
