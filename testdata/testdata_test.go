package testdata_test

import (
	"bytes"
	"testing"

	"github.com/bdewgo/automapper/ahb"
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/mapping"
	"github.com/bdewgo/automapper/mig"
	"github.com/bdewgo/automapper/pidfilter"
	"github.com/bdewgo/automapper/testdata"
)

func TestLoadUTILMDAnmeldungTokenizes(t *testing.T) {
	data, err := testdata.LoadUTILMDAnmeldung()
	if err != nil {
		t.Fatalf("LoadUTILMDAnmeldung() error = %v", err)
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\r\n\t "), []byte("UNB+")) {
		t.Fatal("expected the fixture to start with a UNB segment")
	}

	segs, delims := edifact.Tokenize(data)
	if delims != edifact.DefaultDelimiters() {
		t.Fatalf("expected default delimiters, got %+v", delims)
	}

	want := []string{"UNB", "UNH", "BGM", "NAD", "NAD", "IDE", "LOC", "SEQ", "RFF", "UNT", "UNZ"}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segs), segTags(segs))
	}
	for i, tag := range want {
		if segs[i].Tag != tag {
			t.Fatalf("segment %d: expected %s, got %s", i, tag, segs[i].Tag)
		}
	}
}

func segTags(segs []edifact.Segment) []string {
	tags := make([]string, len(segs))
	for i, s := range segs {
		tags[i] = s.Tag
	}
	return tags
}

func TestLoadMIGUtilmdParsesSchema(t *testing.T) {
	data, err := testdata.LoadMIGUtilmdFV2504()
	if err != nil {
		t.Fatalf("LoadMIGUtilmdFV2504() error = %v", err)
	}
	schema, err := mig.Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("mig.Load() error = %v", err)
	}
	if schema.FormatVersion != "FV2504" || schema.MessageType != "UTILMD" {
		t.Fatalf("unexpected schema identity: %+v", schema)
	}
	if len(schema.RootSegments) != 1 || schema.RootSegments[0].Tag != "BGM" {
		t.Fatalf("unexpected root segments: %+v", schema.RootSegments)
	}
	sg4, ok := findGroup(schema.Groups, "SG4")
	if !ok {
		t.Fatal("expected SG4 in the loaded schema")
	}
	if _, ok := sg4.GroupByID("SG5"); !ok {
		t.Fatal("expected SG5 nested under SG4")
	}
}

func findGroup(groups []mig.GroupDecl, id string) (mig.GroupDecl, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return mig.GroupDecl{}, false
}

func TestLoadAHBParsesWorkflowAndFiltersSchema(t *testing.T) {
	migData, err := testdata.LoadMIGUtilmdFV2504()
	if err != nil {
		t.Fatalf("LoadMIGUtilmdFV2504() error = %v", err)
	}
	schema, err := mig.Load(bytes.NewReader(migData))
	if err != nil {
		t.Fatalf("mig.Load() error = %v", err)
	}

	ahbData, err := testdata.LoadAHBUtilmd55003()
	if err != nil {
		t.Fatalf("LoadAHBUtilmd55003() error = %v", err)
	}
	ahbSchema, err := ahb.Load(bytes.NewReader(ahbData))
	if err != nil {
		t.Fatalf("ahb.Load() error = %v", err)
	}
	wf, ok := ahbSchema.Workflow("55003")
	if !ok {
		t.Fatal("expected workflow 55003 in the loaded AHB")
	}

	filtered := pidfilter.Filter(schema, wf)
	if _, ok := findGroup(filtered.Groups, "SG4"); !ok {
		t.Fatal("expected SG4 to survive PID filtering (referenced by the workflow)")
	}
}

func TestLoadMappingDefinitionsResolveAgainstSchema(t *testing.T) {
	migData, err := testdata.LoadMIGUtilmdFV2504()
	if err != nil {
		t.Fatalf("LoadMIGUtilmdFV2504() error = %v", err)
	}
	schema, err := mig.Load(bytes.NewReader(migData))
	if err != nil {
		t.Fatalf("mig.Load() error = %v", err)
	}
	idx := mapping.BuildSchemaIndex(schema)

	mtData, err := testdata.LoadMappingMarktteilnehmer()
	if err != nil {
		t.Fatalf("LoadMappingMarktteilnehmer() error = %v", err)
	}
	mtDef, err := mapping.LoadDefinition(mtData, testdata.FileMappingMarktteiln, idx)
	if err != nil {
		t.Fatalf("LoadDefinition(marktteilnehmer) error = %v", err)
	}
	if mtDef.Entity != "Marktteilnehmer" || mtDef.SourceGroup != "SG2" {
		t.Fatalf("unexpected marktteilnehmer definition: %+v", mtDef)
	}

	mlData, err := testdata.LoadMappingMarktlokation()
	if err != nil {
		t.Fatalf("LoadMappingMarktlokation() error = %v", err)
	}
	mlDef, err := mapping.LoadDefinition(mlData, testdata.FileMappingMarktlok, idx)
	if err != nil {
		t.Fatalf("LoadDefinition(marktlokation) error = %v", err)
	}
	if mlDef.Entity != "Marktlokation" || mlDef.Discriminator == nil || mlDef.Discriminator.Value != "Z16" {
		t.Fatalf("unexpected marktlokation definition: %+v", mlDef)
	}
}

func TestLoadPIDSchemaDecodesAndResolves(t *testing.T) {
	data, err := testdata.LoadPIDSchema55003()
	if err != nil {
		t.Fatalf("LoadPIDSchema55003() error = %v", err)
	}
	ps, err := mapping.DecodePIDSchema(data)
	if err != nil {
		t.Fatalf("DecodePIDSchema() error = %v", err)
	}
	idx := mapping.BuildIndexFromPIDSchema(ps)
	p, err := mapping.Resolve(idx, "loc.c517.d3225")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.SegmentTag != "LOC" || !p.HasSub {
		t.Fatalf("unexpected resolved path: %+v", p)
	}
}
