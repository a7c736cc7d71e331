package mapping

import (
	"testing"
	"testing/fstest"
)

func TestLoadBundleSplitsMessageAndPerPID(t *testing.T) {
	idx := BuildSchemaIndex(sampleSchema())

	fsys := fstest.MapFS{
		"message/marktteilnehmer.toml": &fstest.MapFile{Data: []byte(`
[meta]
entity = "Marktteilnehmer"

[fields]
"nad.0" = "marktrolle"
`)},
		"pid_55003/marktlokation.toml": &fstest.MapFile{Data: []byte(`
[meta]
entity = "Marktlokation"
source_group = "SG4.SG5"

[fields]
"loc.c517.d3225" = "marktlokationsId"
`)},
	}

	bundle, err := LoadBundle(fsys, idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bundle.Message) != 1 || bundle.Message[0].Entity != "Marktteilnehmer" {
		t.Fatalf("unexpected message definitions: %+v", bundle.Message)
	}
	pidDefs, ok := bundle.PerPID["55003"]
	if !ok || len(pidDefs) != 1 || pidDefs[0].Entity != "Marktlokation" {
		t.Fatalf("unexpected per-PID definitions: %+v", bundle.PerPID)
	}
}
