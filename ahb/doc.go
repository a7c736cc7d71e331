// Package ahb loads an Application Handbook schema from XML (spec §4.4):
// for each workflow (PID), its identifier, description, communication
// direction, and the set of MIG segment numbers it references. The status
// expressions AHB XML also carries are collected verbatim for the separate
// (out-of-scope) validator pipeline but are not interpreted here.
package ahb
