package edifact_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/render"
)

func segTags(segs []edifact.Segment) []string {
	tags := make([]string, len(segs))
	for i, s := range segs {
		tags[i] = s.Tag
	}
	return tags
}

func TestTokenizeMinimal(t *testing.T) {
	input := []byte("UNB+UNOC:3+A+B+250101:1200+R'UNH+M+UTILMD:D:11A:UN:S2.1'BGM+E01+D1+9'UNT+3+M'UNZ+1+R'")

	segs, delims := edifact.Tokenize(input)
	if delims != edifact.DefaultDelimiters() {
		t.Fatalf("expected default delimiters, got %+v", delims)
	}

	want := []string{"UNB", "UNH", "BGM", "UNT", "UNZ"}
	if diff := cmp.Diff(want, segTags(segs)); diff != "" {
		t.Fatalf("tag mismatch (-want +got):\n%s", diff)
	}

	unh := segs[1]
	gotComponents := []string{}
	for _, c := range unh.Elements[1] {
		gotComponents = append(gotComponents, c.String())
	}
	wantComponents := []string{"UTILMD", "D", "11A", "UN", "S2.1"}
	if diff := cmp.Diff(wantComponents, gotComponents); diff != "" {
		t.Fatalf("UNH element 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeUNA(t *testing.T) {
	input := []byte("UNA:+.? 'UNB+UNOC:3+A+B+250101:1200+R'")
	segs, delims := edifact.Tokenize(input)

	if segs[0].Tag != "UNA" {
		t.Fatalf("expected first segment UNA, got %s", segs[0].Tag)
	}
	if delims != edifact.DefaultDelimiters() {
		t.Fatalf("expected delimiters matching defaults, got %+v", delims)
	}
}

func TestTokenizeEscapeRoundTrip(t *testing.T) {
	// "a?+b?:c??d?'e" tokenizes to the single component "a+b:c?d'e".
	input := []byte("ABC+a?+b?:c??d?'e'")
	segs, delims := edifact.Tokenize(input)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	got := segs[0].Value(0)
	want := "a+b:c?d'e"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	rendered := render.Render([]edifact.Segment{segs[0]}, delims)
	if string(rendered) != string(input) {
		t.Fatalf("round-trip mismatch:\n got: %s\nwant: %s", rendered, input)
	}
}

func TestTokenizeGroupRepetition(t *testing.T) {
	input := []byte("UNH+M'BGM+E01'NAD+MS+9978842000002::293'NAD+MR+9900269000000::293'")
	segs, _ := edifact.Tokenize(input)

	want := []string{"UNH", "BGM", "NAD", "NAD"}
	if diff := cmp.Diff(want, segTags(segs)); diff != "" {
		t.Fatalf("tag mismatch (-want +got):\n%s", diff)
	}

	if segs[2].Value(0) != "MS" {
		t.Fatalf("first NAD element 0 = %q, want MS", segs[2].Value(0))
	}
	if segs[3].Value(0) != "MR" {
		t.Fatalf("second NAD element 0 = %q, want MR", segs[3].Value(0))
	}
}

func TestTokenizeWhitespaceAtSegmentStart(t *testing.T) {
	input := []byte("UNH+M'\r\n  BGM+E01'")
	segs, _ := edifact.Tokenize(input)
	want := []string{"UNH", "BGM"}
	if diff := cmp.Diff(want, segTags(segs)); diff != "" {
		t.Fatalf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeTruncated(t *testing.T) {
	input := []byte("UNH+M'BGM+E01+D1")
	segs, _ := edifact.Tokenize(input)
	want := []string{"UNH", "BGM"}
	if diff := cmp.Diff(want, segTags(segs)); diff != "" {
		t.Fatalf("tag mismatch (-want +got):\n%s", diff)
	}
	if segs[1].Value(1) != "D1" {
		t.Fatalf("expected partial segment to retain D1, got %q", segs[1].Value(1))
	}
}

func TestTokenizeZeroCopy(t *testing.T) {
	input := []byte("BGM+E01+D1'")
	segs, _ := edifact.Tokenize(input)
	c := segs[0].Elements[0][0]
	// Verify the component shares a backing array with input: mutating
	// input through the slice should be visible in c (ignoring the
	// escaped path, which always copies).
	if &input[4] != &c[0] {
		t.Fatalf("expected component to alias input buffer (zero-copy), got distinct backing arrays")
	}
}
