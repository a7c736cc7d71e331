// Package split frames a tokenized EDIFACT segment stream into its
// interchange envelope, one or more message units, and the closing UNZ,
// mirroring the UNA/UNB...UNH...UNT...UNZ structure of a BDEW interchange.
package split
