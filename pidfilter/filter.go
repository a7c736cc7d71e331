package pidfilter

import (
	"sort"
	"strconv"

	"github.com/bdewgo/automapper/ahb"
	"github.com/bdewgo/automapper/mig"
)

// transportTags are kept unconditionally regardless of PID, since they
// carry the interchange envelope rather than message-variant content.
var transportTags = map[string]bool{"UNA": true, "UNB": true, "UNZ": true}

// Filter specializes schema to the segments and groups wf references,
// merging any group variants left sharing the same identifier after
// filtering (spec §4.5 step 4).
func Filter(schema *mig.Schema, wf ahb.Workflow) *mig.Schema {
	out := &mig.Schema{
		FormatVersion: schema.FormatVersion,
		MessageType:   schema.MessageType,
	}

	for _, s := range schema.RootSegments {
		if transportTags[s.Tag] || wf.HasSegmentNumber(s.Number) {
			out.RootSegments = append(out.RootSegments, s)
		}
	}

	var kept []mig.GroupDecl
	for _, g := range schema.Groups {
		if fg, ok := filterGroup(g, wf); ok {
			kept = append(kept, fg)
		}
	}
	out.Groups = mergeGroups(kept)

	return out
}

// filterGroup recursively applies the PID filter to g. It returns false
// when g's entry segment is not referenced by wf, meaning the group is
// entirely absent for this PID.
func filterGroup(g mig.GroupDecl, wf ahb.Workflow) (mig.GroupDecl, bool) {
	entry := g.EntrySegment()
	if entry == "" {
		return mig.GroupDecl{}, false
	}
	entrySeg := g.Segments[0]
	if !wf.HasSegmentNumber(entrySeg.Number) {
		return mig.GroupDecl{}, false
	}

	filtered := mig.GroupDecl{
		ID:                  g.ID,
		StatusStd:           g.StatusStd,
		StatusSpecification: g.StatusSpecification,
		MaxRepStd:           g.MaxRepStd,
		MaxRepSpecification: g.MaxRepSpecification,
	}
	for _, s := range g.Segments {
		if wf.HasSegmentNumber(s.Number) {
			filtered.Segments = append(filtered.Segments, s)
		}
	}

	var nested []mig.GroupDecl
	for _, sub := range g.Groups {
		if fsub, ok := filterGroup(sub, wf); ok {
			nested = append(nested, fsub)
		}
	}
	filtered.Groups = mergeGroups(nested)

	return filtered, true
}

// mergeGroups collapses groups sharing the same ID into a single grammar
// node per spec §4.5 step 4 / §3, then sorts the result by the group
// identifier's numeric suffix ascending (SG5 before SG10).
func mergeGroups(groups []mig.GroupDecl) []mig.GroupDecl {
	if len(groups) == 0 {
		return nil
	}

	var order []string
	byID := make(map[string][]mig.GroupDecl)
	for _, g := range groups {
		if _, seen := byID[g.ID]; !seen {
			order = append(order, g.ID)
		}
		byID[g.ID] = append(byID[g.ID], g)
	}

	merged := make([]mig.GroupDecl, 0, len(order))
	for _, id := range order {
		merged = append(merged, mergeVariants(byID[id]))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return groupSuffix(merged[i].ID) < groupSuffix(merged[j].ID)
	})

	return merged
}

// mergeVariants merges sibling MIG group declarations that share an ID:
// the segment list is the positional union with the per-tag maximum
// multiplicity; the nested-group list is the recursive merge of every
// variant's nested groups.
func mergeVariants(variants []mig.GroupDecl) mig.GroupDecl {
	base := variants[0]
	merged := mig.GroupDecl{
		ID:                  base.ID,
		StatusStd:           base.StatusStd,
		StatusSpecification: base.StatusSpecification,
		MaxRepStd:           base.MaxRepStd,
		MaxRepSpecification: base.MaxRepSpecification,
	}

	var tagOrder []string
	byTag := make(map[string]mig.SegmentDecl)
	for _, v := range variants {
		if v.EffectiveMaxRep() > merged.EffectiveMaxRep() {
			merged.MaxRepStd = v.MaxRepStd
			merged.MaxRepSpecification = v.MaxRepSpecification
		}
		for _, s := range v.Segments {
			existing, seen := byTag[s.Tag]
			if !seen {
				tagOrder = append(tagOrder, s.Tag)
				byTag[s.Tag] = s
				continue
			}
			if s.EffectiveMaxRep() > existing.EffectiveMaxRep() {
				if s.MaxRepSpecification > existing.MaxRepSpecification {
					existing.MaxRepSpecification = s.MaxRepSpecification
				}
				if s.MaxRepStd > existing.MaxRepStd {
					existing.MaxRepStd = s.MaxRepStd
				}
				byTag[s.Tag] = existing
			}
		}
	}
	for _, tag := range tagOrder {
		merged.Segments = append(merged.Segments, byTag[tag])
	}

	var allNested []mig.GroupDecl
	for _, v := range variants {
		allNested = append(allNested, v.Groups...)
	}
	merged.Groups = mergeGroups(allNested)

	return merged
}

// groupSuffix extracts the trailing numeric portion of a group identifier
// such as "SG10" -> 10. Identifiers without a numeric suffix sort last.
func groupSuffix(id string) int {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == end {
		return 1<<31 - 1
	}
	n, err := strconv.Atoi(id[start:end])
	if err != nil {
		return 1<<31 - 1
	}
	return n
}
