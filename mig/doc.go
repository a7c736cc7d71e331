// Package mig loads a Message Implementation Guide schema from XML (spec
// §4.3). MIG XML names elements with a sigil prefix — M_ for the message
// wrapper, G_ for segment groups, S_ for segments, C_ for composites, D_
// for data elements, and Code for enumerated values — which this package's
// loader uses to drive a generic recursive descent instead of a fixed
// struct-per-tag decode.
package mig
