package mapping

import (
	"strconv"
	"strings"
)

// Path is a resolved field-path coordinate: the segment tag it addresses
// (optionally restricted to instances whose element 0 equals Qualifier),
// the element index, and — for composite members — the sub-index.
type Path struct {
	SegmentTag string
	Qualifier  string // "" when the path carries no [qualifier] suffix
	ElementIdx int
	SubIdx     int
	HasSub     bool
}

// String renders p back to its canonical ordinal form, e.g. "cav[Z91].1.2"
// or "loc.1". Resolve(String()) is always a fixed point (spec §8 "Path
// resolution idempotence").
func (p Path) String() string {
	tag := strings.ToLower(p.SegmentTag)
	if p.Qualifier != "" {
		tag = tag + "[" + p.Qualifier + "]"
	}
	if p.HasSub {
		return tag + "." + strconv.Itoa(p.ElementIdx) + "." + strconv.Itoa(p.SubIdx)
	}
	return tag + "." + strconv.Itoa(p.ElementIdx)
}

// Resolve parses raw (named or already-ordinal) and resolves it to a
// Path. Already-ordinal paths (numeric element/sub-index components) pass
// through unchanged except for case/qualifier normalization, which is
// what makes Resolve idempotent.
func Resolve(idx *SchemaIndex, raw string) (Path, error) {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Path{}, &PathError{Path: raw, Cause: ErrMalformedPath}
	}

	tag, qualifier, err := parseTagAndQualifier(parts[0])
	if err != nil {
		return Path{}, &PathError{Path: raw, Cause: err}
	}

	rest := parts[1:]
	if allNumeric(rest) {
		p := Path{SegmentTag: tag, Qualifier: qualifier}
		p.ElementIdx, _ = strconv.Atoi(rest[0])
		if len(rest) == 2 {
			p.SubIdx, _ = strconv.Atoi(rest[1])
			p.HasSub = true
		}
		return p, nil
	}

	if len(rest) == 1 {
		ref, ok := idx.resolveSimple(tag, normalizeToken(rest[0]))
		if !ok {
			return Path{}, &PathError{Path: raw, Cause: ErrUnresolvedPath}
		}
		return Path{SegmentTag: tag, Qualifier: qualifier, ElementIdx: ref.idx, SubIdx: ref.sub, HasSub: ref.hasSub}, nil
	}

	ref, ok := idx.resolveComposite(tag, normalizeToken(rest[0]), normalizeToken(rest[1]))
	if !ok {
		return Path{}, &PathError{Path: raw, Cause: ErrUnresolvedPath}
	}
	return Path{SegmentTag: tag, Qualifier: qualifier, ElementIdx: ref.idx, SubIdx: ref.sub, HasSub: ref.hasSub}, nil
}

// parseTagAndQualifier splits "cav[z91]" into ("CAV", "Z91") or "loc" into
// ("LOC", "").
func parseTagAndQualifier(s string) (tag, qualifier string, err error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return strings.ToUpper(s), "", nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", "", ErrMalformedPath
	}
	tag = strings.ToUpper(s[:open])
	qualifier = strings.ToUpper(s[open+1 : len(s)-1])
	if tag == "" || qualifier == "" {
		return "", "", ErrMalformedPath
	}
	return tag, qualifier, nil
}

func allNumeric(parts []string) bool {
	for _, p := range parts {
		if !isAllDigits(p) {
			return false
		}
	}
	return true
}

// Discriminator is a resolved (segment tag, element/sub position, value)
// triple used to select between candidate definitions for a group
// instance, e.g. from the meta string "LOC.d3227=Z16".
type Discriminator struct {
	Path  Path
	Value string
}

// ParseDiscriminator resolves a "TAG.path=VALUE" meta string.
func ParseDiscriminator(idx *SchemaIndex, raw string) (Discriminator, error) {
	eq := strings.IndexByte(raw, '=')
	if eq < 0 {
		return Discriminator{}, &PathError{Path: raw, Cause: ErrMalformedPath}
	}
	pathPart, value := raw[:eq], raw[eq+1:]
	p, err := Resolve(idx, pathPart)
	if err != nil {
		return Discriminator{}, err
	}
	return Discriminator{Path: p, Value: value}, nil
}
