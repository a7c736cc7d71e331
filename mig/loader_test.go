package mig

import (
	"errors"
	"strings"
	"testing"
)

const sampleMIG = `<?xml version="1.0" encoding="UTF-8"?>
<M_UTILMD Versionsnummer="S2.1">
  <S_UNH Name="Nachrichten-Kopfsegment" Status_Std="M" MaxRep_Std="1" Number="0010">
    <D_0062 Description="Nachrichten-Referenznummer"/>
  </S_UNH>
  <S_BGM Name="Beginn der Nachricht" Status_Std="M" MaxRep_Std="1" Number="0020">
    <C_C002 Description="Dokumenten-/Nachrichtenname">
      <D_1001 Description="Dokumentenname, Code">
        <Code Value="E01" Description="Bestellung"/>
      </D_1001>
    </C_C002>
  </S_BGM>
  <G_SG4 Status_Std="M" MaxRep_Std="99999" Number="0030">
    <S_SEQ Name="Segmentgruppenkennung" Status_Std="M" MaxRep_Std="1" Number="0040"/>
    <G_SG5 Status_Std="M" MaxRep_Std="1" Number="0050">
      <S_LOC Name="Ort" Status_Std="M" MaxRep_Std="1" Number="0060">
        <D_3227 Description="Ortstyp, Code"/>
        <C_C517 Description="Standortkennung">
          <D_3225 Description="Standort-Identifikation"/>
        </C_C517>
      </S_LOC>
    </G_SG5>
  </G_SG4>
  <S_UNT Name="Nachrichten-Endesegment" Status_Std="M" MaxRep_Std="1" Number="9000"/>
</M_UTILMD>`

func TestLoadBasic(t *testing.T) {
	schema, err := Load(strings.NewReader(sampleMIG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schema.FormatVersion != "S2.1" {
		t.Fatalf("expected format version S2.1, got %q", schema.FormatVersion)
	}
	if schema.MessageType != "UTILMD" {
		t.Fatalf("expected message type UTILMD, got %q", schema.MessageType)
	}
	if len(schema.RootSegments) != 3 {
		t.Fatalf("expected 3 root segments (UNH, BGM, UNT), got %d", len(schema.RootSegments))
	}
	if schema.RootSegments[0].Tag != "UNH" || schema.RootSegments[0].Number != "0010" {
		t.Fatalf("unexpected first root segment: %+v", schema.RootSegments[0])
	}

	if len(schema.Groups) != 1 || schema.Groups[0].ID != "SG4" {
		t.Fatalf("expected a single SG4 group, got %+v", schema.Groups)
	}
	sg4 := schema.Groups[0]
	if sg4.EntrySegment() != "SEQ" {
		t.Fatalf("expected SG4 entry segment SEQ, got %q", sg4.EntrySegment())
	}
	if len(sg4.Groups) != 1 || sg4.Groups[0].ID != "SG5" {
		t.Fatalf("expected nested SG5, got %+v", sg4.Groups)
	}

	loc, ok := sg4.Groups[0].SegmentByTag("LOC")
	if !ok {
		t.Fatalf("expected LOC segment within SG5")
	}
	if len(loc.Elements) != 2 {
		t.Fatalf("expected 2 elements on LOC, got %d", len(loc.Elements))
	}
	if !loc.Elements[1].Composite || loc.Elements[1].ID != "C517" {
		t.Fatalf("expected composite C517 at index 1, got %+v", loc.Elements[1])
	}
}

func TestLoadMissingVersionsnummer(t *testing.T) {
	_, err := Load(strings.NewReader(`<M_UTILMD><S_UNH/></M_UTILMD>`))
	if err == nil {
		t.Fatal("expected a MissingAttributeError")
	}
	var missing *MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingAttributeError, got %T: %v", err, err)
	}
}
