package ahb

import (
	"strings"
	"testing"
)

const sampleAHB = `<?xml version="1.0" encoding="UTF-8"?>
<AHB_UTILMD Versionsnummer="S2.1">
  <AWF Pruefidentifikator="55003" Beschreibung="Anmeldung MaBiS" Kommunikationsrichtung="outbound">
    <S_UNH Number="0010" Status="M"/>
    <S_BGM Number="0020" Status="M"/>
    <G_SG4 Number="0030">
      <S_SEQ Number="0040" Status="M"/>
      <G_SG5>
        <S_LOC Number="0060" Status="K"/>
      </G_SG5>
    </G_SG4>
  </AWF>
  <AWF Pruefidentifikator="55012" Beschreibung="Abmeldung" Kommunikationsrichtung="inbound">
    <S_UNH Number="0010" Status="M"/>
  </AWF>
</AHB_UTILMD>`

func TestLoadWorkflows(t *testing.T) {
	schema, err := Load(strings.NewReader(sampleAHB))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wf, ok := schema.Workflow("55003")
	if !ok {
		t.Fatal("expected workflow 55003 to be present")
	}
	if wf.Direction != DirectionOutbound {
		t.Fatalf("expected outbound direction, got %q", wf.Direction)
	}
	for _, number := range []string{"0010", "0020", "0040", "0060"} {
		if !wf.HasSegmentNumber(number) {
			t.Fatalf("expected segment number %s to be referenced", number)
		}
	}
	if wf.HasSegmentNumber("9999") {
		t.Fatal("did not expect segment number 9999 to be referenced")
	}
	if wf.StatusExpressions["0060"] != "K" {
		t.Fatalf("expected status K for segment 0060, got %q", wf.StatusExpressions["0060"])
	}

	wf2, ok := schema.Workflow("55012")
	if !ok {
		t.Fatal("expected workflow 55012 to be present")
	}
	if wf2.Direction != DirectionInbound {
		t.Fatalf("expected inbound direction, got %q", wf2.Direction)
	}
}
