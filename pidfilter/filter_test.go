package pidfilter

import (
	"testing"

	"github.com/bdewgo/automapper/ahb"
	"github.com/bdewgo/automapper/mig"
)

func workflow(numbers ...string) ahb.Workflow {
	wf := ahb.Workflow{SegmentNumbers: make(map[string]struct{})}
	for _, n := range numbers {
		wf.SegmentNumbers[n] = struct{}{}
	}
	return wf
}

func TestFilterRootSegmentsKeepsTransportAndReferenced(t *testing.T) {
	schema := &mig.Schema{
		RootSegments: []mig.SegmentDecl{
			{Tag: "UNB", Number: ""},
			{Tag: "UNH", Number: "0010"},
			{Tag: "BGM", Number: "0020"},
			{Tag: "DTM", Number: "0025"},
			{Tag: "UNT", Number: "9000"},
		},
	}
	wf := workflow("0010", "0020", "9000")

	out := Filter(schema, wf)

	var tags []string
	for _, s := range out.RootSegments {
		tags = append(tags, s.Tag)
	}
	want := []string{"UNB", "UNH", "BGM", "UNT"}
	if len(tags) != len(want) {
		t.Fatalf("got tags %v, want %v", tags, want)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Fatalf("got tags %v, want %v", tags, want)
		}
	}
}

// TestFilterMergesGroupVariants reproduces the worked scenario of three
// SG8 variants sharing the entry segment NAD, with CAV multiplicities 1, 1
// and 2 within a common nested SG10, plus SEQ and RFF segments scattered
// unevenly across the variants. The filter must merge them into a single
// SG8 whose SG10 carries CAV at multiplicity 2 and whose segment list is
// NAD followed by the union of SEQ and RFF.
func TestFilterMergesGroupVariants(t *testing.T) {
	makeVariant := func(cavMaxRep int, extra ...mig.SegmentDecl) mig.GroupDecl {
		segs := append([]mig.SegmentDecl{{Tag: "NAD", Number: "0100"}}, extra...)
		return mig.GroupDecl{
			ID:       "SG8",
			Segments: segs,
			Groups: []mig.GroupDecl{
				{
					ID: "SG10",
					Segments: []mig.SegmentDecl{
						{Tag: "CAV", Number: "0120", MaxRepStd: cavMaxRep},
					},
				},
			},
		}
	}

	variantA := makeVariant(1, mig.SegmentDecl{Tag: "SEQ", Number: "0110"})
	variantB := makeVariant(1)
	variantC := makeVariant(2, mig.SegmentDecl{Tag: "RFF", Number: "0115"})

	schema := &mig.Schema{
		RootSegments: []mig.SegmentDecl{{Tag: "UNH", Number: "0010"}},
		Groups:       []mig.GroupDecl{variantA, variantB, variantC},
	}
	wf := workflow("0010", "0100", "0110", "0115", "0120")

	out := Filter(schema, wf)

	if len(out.Groups) != 1 {
		t.Fatalf("expected exactly one merged SG8, got %d", len(out.Groups))
	}
	sg8 := out.Groups[0]
	if sg8.ID != "SG8" {
		t.Fatalf("expected SG8, got %q", sg8.ID)
	}

	var tags []string
	for _, s := range sg8.Segments {
		tags = append(tags, s.Tag)
	}
	want := []string{"NAD", "SEQ", "RFF"}
	if len(tags) != len(want) {
		t.Fatalf("got segment tags %v, want %v", tags, want)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Fatalf("got segment tags %v, want %v", tags, want)
		}
	}

	if len(sg8.Groups) != 1 || sg8.Groups[0].ID != "SG10" {
		t.Fatalf("expected a single merged SG10, got %+v", sg8.Groups)
	}
	sg10 := sg8.Groups[0]
	cav, ok := sg10.SegmentByTag("CAV")
	if !ok {
		t.Fatal("expected CAV segment within merged SG10")
	}
	if cav.EffectiveMaxRep() != 2 {
		t.Fatalf("expected merged CAV max repetition 2, got %d", cav.EffectiveMaxRep())
	}
}

// TestFilterDropsUnreferencedGroup verifies a group whose entry segment's
// Number is absent from the workflow is dropped entirely, including its
// nested groups, rather than partially filtered.
func TestFilterDropsUnreferencedGroup(t *testing.T) {
	schema := &mig.Schema{
		Groups: []mig.GroupDecl{
			{
				ID:       "SG4",
				Segments: []mig.SegmentDecl{{Tag: "SEQ", Number: "0040"}},
				Groups: []mig.GroupDecl{
					{ID: "SG5", Segments: []mig.SegmentDecl{{Tag: "LOC", Number: "0060"}}},
				},
			},
		},
	}
	wf := workflow("0010")

	out := Filter(schema, wf)

	if len(out.Groups) != 0 {
		t.Fatalf("expected SG4 to be dropped entirely, got %+v", out.Groups)
	}
}

// TestFilterUnionMonotonic is the §8 "PID filter union monotonicity"
// invariant: widening the workflow's referenced segment numbers can only
// add segments/groups to the filtered output, never remove ones already
// present.
func TestFilterUnionMonotonic(t *testing.T) {
	schema := &mig.Schema{
		RootSegments: []mig.SegmentDecl{
			{Tag: "UNH", Number: "0010"},
			{Tag: "BGM", Number: "0020"},
			{Tag: "DTM", Number: "0025"},
		},
	}

	narrow := Filter(schema, workflow("0010"))
	wide := Filter(schema, workflow("0010", "0020", "0025"))

	narrowTags := make(map[string]bool)
	for _, s := range narrow.RootSegments {
		narrowTags[s.Tag] = true
	}
	wideTags := make(map[string]bool)
	for _, s := range wide.RootSegments {
		wideTags[s.Tag] = true
	}
	for tag := range narrowTags {
		if !wideTags[tag] {
			t.Fatalf("widening the workflow dropped tag %q present in the narrower filter", tag)
		}
	}
	if len(wideTags) <= len(narrowTags) {
		t.Fatalf("expected widening to add segments: narrow=%v wide=%v", narrowTags, wideTags)
	}
}

func TestGroupSuffixSortsNumerically(t *testing.T) {
	groups := []mig.GroupDecl{
		{ID: "SG10", Segments: []mig.SegmentDecl{{Tag: "A"}}},
		{ID: "SG5", Segments: []mig.SegmentDecl{{Tag: "B"}}},
		{ID: "SG2", Segments: []mig.SegmentDecl{{Tag: "C"}}},
	}
	merged := mergeGroups(groups)
	want := []string{"SG2", "SG5", "SG10"}
	for i, id := range want {
		if merged[i].ID != id {
			t.Fatalf("got order %v, want %v", mergedIDs(merged), want)
		}
	}
}

func mergedIDs(groups []mig.GroupDecl) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}
