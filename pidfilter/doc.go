// Package pidfilter specializes a full mig.Schema down to the grammar a
// single PID can drive unambiguously (spec §4.5): it intersects segments
// and groups against an ahb.Workflow's referenced segment numbers, then
// merges group variants that share an identifier so the recursive-descent
// assembler never has to choose between declaration siblings.
package pidfilter
