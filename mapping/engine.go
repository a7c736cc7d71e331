package mapping

import (
	"strings"

	"github.com/bdewgo/automapper/assemble"
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/render"
)

// rawCompanionTags are the segment tags whose verbatim rendered text is
// preserved in a companion object alongside the parsed fields they
// contribute to (spec §4.8 "[ADD] Raw-string companion preservation",
// resolving Open Question 1): DTM, RFF, and CAV carry enough
// presentation-sensitive structure (date qualifiers, code-list versions)
// that round-tripping through parsed fields alone can lose fidelity a
// downstream consumer may still want the original bytes for.
var rawCompanionTags = map[string]bool{"DTM": true, "RFF": true, "CAV": true}

// GroupInstance is one resolved occurrence of a definition's source
// group: the flat segment list a forward/reverse pass reads and writes
// against. For a definition with no source_group (message-level, reading
// directly off root segments) there is exactly one instance.
type GroupInstance struct {
	Segments []edifact.Segment
}

// ResolveGroupInstances walks tree's groups along the dotted
// source-group path (e.g. "SG4.SG5") and returns one GroupInstance per
// matching leaf-level repetition. An empty path returns a single
// instance over tree's root segments.
func ResolveGroupInstances(tree *assemble.Tree, sourceGroupPath string) []GroupInstance {
	if sourceGroupPath == "" {
		return []GroupInstance{{Segments: tree.RootSegments}}
	}

	ids := strings.Split(sourceGroupPath, ".")
	var reps []assemble.Repetition
	for _, g := range tree.Groups {
		if g.ID == ids[0] {
			reps = append(reps, g.Repetitions...)
		}
	}
	for _, id := range ids[1:] {
		var next []assemble.Repetition
		for _, rep := range reps {
			for _, g := range rep.Groups {
				if g.ID == id {
					next = append(next, g.Repetitions...)
				}
			}
		}
		reps = next
	}

	out := make([]GroupInstance, len(reps))
	for i, rep := range reps {
		out[i] = GroupInstance{Segments: rep.Segments}
	}
	return out
}

func findSegment(segments []edifact.Segment, tag, qualifier string) *edifact.Segment {
	for i := range segments {
		if segments[i].Tag != tag {
			continue
		}
		if qualifier == "" || segments[i].MatchesQualifier(qualifier) {
			return &segments[i]
		}
	}
	return nil
}

// matchesDiscriminator reports whether inst contains a segment satisfying
// def's discriminator, selecting this definition among siblings that
// share a source-group path (spec §4.8 "Keys and lookup").
func matchesDiscriminator(inst GroupInstance, disc Discriminator) bool {
	seg := findSegment(inst.Segments, disc.Path.SegmentTag, disc.Path.Qualifier)
	if seg == nil {
		return false
	}
	var got string
	if disc.Path.HasSub {
		got = seg.At(disc.Path.ElementIdx, disc.Path.SubIdx)
	} else {
		got = seg.Value(disc.Path.ElementIdx)
	}
	return got == disc.Value
}

// ApplyForward evaluates def against inst and returns the resulting
// entity object, or ok=false if def's discriminator doesn't match (the
// definition does not apply to this instance; spec §4.8 "Path
// application — forward").
func ApplyForward(def *Definition, inst GroupInstance, delims edifact.Delimiters) (Entity, bool) {
	if def.Discriminator != nil && !matchesDiscriminator(inst, *def.Discriminator) {
		return nil, false
	}

	out := Entity{}
	for _, fm := range def.Fields {
		applyFieldForward(inst, fm, out)
	}

	companion := Entity{}
	for _, fm := range def.CompanionFields {
		applyFieldForward(inst, fm, companion)
	}
	attachRawCompanions(def, inst, companion, delims)
	if len(companion) > 0 {
		out[def.companionKey()] = companion
	}

	return out, true
}

func applyFieldForward(inst GroupInstance, fm FieldMapping, out Entity) {
	seg := findSegment(inst.Segments, fm.Path.SegmentTag, fm.Path.Qualifier)

	var value string
	if seg != nil {
		if fm.Path.HasSub {
			value = seg.At(fm.Path.ElementIdx, fm.Path.SubIdx)
		} else {
			value = seg.Value(fm.Path.ElementIdx)
		}
	}

	if fm.Target == "" {
		// Discriminator target: emit the synthetic qualifier value under
		// a fixed "qualifier" key rather than a mapping-supplied target.
		if value == "" {
			value = fm.Default
		}
		if value != "" {
			out["qualifier"] = value
		}
		return
	}

	if value == "" {
		if fm.Default == "" {
			return
		}
		value = fm.Default
	}

	if fm.EnumMap != nil {
		if mapped, ok := fm.EnumMap[value]; ok {
			value = mapped
		}
	}

	setDotted(out, fm.Target, value)
}

// attachRawCompanions preserves the verbatim rendered text of any
// rawCompanionTags segment this definition's fields actually reference,
// under companion["raw"] — only when such a segment is present, per Open
// Question 1's resolution: the reverse path never invents a raw form
// that forward didn't produce. There is a single "raw" key: when the
// fields reference more than one such segment, it holds the last one
// found, and only the first field of each tag is looked up.
func attachRawCompanions(def *Definition, inst GroupInstance, companion Entity, delims edifact.Delimiters) {
	seen := make(map[string]bool)
	for _, fm := range def.Fields {
		if !rawCompanionTags[fm.Path.SegmentTag] || seen[fm.Path.SegmentTag] {
			continue
		}
		seg := findSegment(inst.Segments, fm.Path.SegmentTag, fm.Path.Qualifier)
		if seg == nil {
			continue
		}
		seen[fm.Path.SegmentTag] = true
		companion["raw"] = string(render.Render([]edifact.Segment{*seg}, delims))
	}
}

// setDotted writes value at the dotted path target within out, creating
// intermediate Entity objects as needed, without overwriting an existing
// non-empty scalar (spec §4.8 step 5 "first writer wins").
func setDotted(out Entity, target string, value interface{}) {
	parts := strings.Split(target, ".")
	cur := out
	for i, p := range parts {
		if i == len(parts)-1 {
			if existing, ok := cur[p]; ok {
				if s, isStr := existing.(string); isStr && s != "" {
					return
				}
			}
			cur[p] = value
			return
		}
		next, ok := cur[p].(Entity)
		if !ok {
			next = Entity{}
			cur[p] = next
		}
		cur = next
	}
}

// lookupDotted reads the dotted path target from obj, returning "" if any
// segment of the path is absent or not a string.
func lookupDotted(obj Entity, target string) string {
	parts := strings.Split(target, ".")
	cur := interface{}(obj)
	for _, p := range parts {
		m, ok := cur.(Entity)
		if !ok {
			if mm, ok2 := cur.(map[string]interface{}); ok2 {
				m = Entity(mm)
			} else {
				return ""
			}
		}
		cur, ok = m[p]
		if !ok {
			return ""
		}
	}
	s, _ := cur.(string)
	return s
}

// ApplyReverse evaluates def against obj and returns the group instance's
// segments, in the order MIG declares them when order is non-nil
// (fallback: first-referenced order) (spec §4.8 "Path application —
// reverse").
func ApplyReverse(def *Definition, obj Entity, order []string) []edifact.Segment {
	segs := make(map[string]*edifact.Segment)
	var tagOrder []string
	ensure := func(tag string) *edifact.Segment {
		if s, ok := segs[tag]; ok {
			return s
		}
		s := edifact.NewSegment(tag)
		segs[tag] = s
		tagOrder = append(tagOrder, tag)
		return s
	}

	tracker := &seqZoneTracker{}
	for _, fm := range def.Fields {
		if fm.Target == "" {
			continue // discriminator target: nothing to read from obj
		}
		tag := fm.Path.SegmentTag
		if tag == "NAD" || tag == "UNS" {
			tracker.leaveGroup()
		}
		if seqZoneCompanionTags[tag] && !tracker.inZone() {
			continue // outside any SEQ zone, drop (resolves Open Question 2)
		}
		seg := ensure(tag)
		tracker.observe(tag)

		value := lookupDotted(obj, fm.Target)
		if value == "" && fm.Default != "" {
			value = fm.Default
		}
		if rev := fm.reverseEnum(); rev != nil {
			if mapped, ok := rev[value]; ok {
				value = mapped
			}
		}

		if fm.Path.HasSub {
			seg.SetAt(fm.Path.ElementIdx, fm.Path.SubIdx, value)
		} else {
			seg.Set(fm.Path.ElementIdx, value)
		}
		if fm.Path.Qualifier != "" && seg.Value(0) == "" {
			seg.Set(0, fm.Path.Qualifier)
		}
	}

	if def.Discriminator != nil {
		seg := ensure(def.Discriminator.Path.SegmentTag)
		if def.Discriminator.Path.HasSub {
			seg.SetAt(def.Discriminator.Path.ElementIdx, def.Discriminator.Path.SubIdx, def.Discriminator.Value)
		} else {
			seg.Set(def.Discriminator.Path.ElementIdx, def.Discriminator.Value)
		}
	}

	effectiveOrder := order
	if effectiveOrder == nil {
		effectiveOrder = tagOrder
	}

	out := make([]edifact.Segment, 0, len(segs))
	emitted := make(map[string]bool, len(segs))
	for _, tag := range effectiveOrder {
		if seg, ok := segs[tag]; ok && !emitted[tag] {
			out = append(out, *seg)
			emitted[tag] = true
		}
	}
	for _, tag := range tagOrder {
		if !emitted[tag] {
			out = append(out, *segs[tag])
			emitted[tag] = true
		}
	}

	return out
}
