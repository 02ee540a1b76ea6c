package export

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewRegistry_Formats(t *testing.T) {
	reg := NewRegistry(testLogger())
	want := []string{"edl", "fcpxml", "premiere", "resolve"}
	if got := FormatNames(reg); !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatNames = %v, want %v", got, want)
	}
	for name, exp := range reg {
		if exp.Format() != name {
			t.Errorf("registry key %q maps to format %q", name, exp.Format())
		}
		if !strings.HasPrefix(exp.FileExt(), ".") {
			t.Errorf("%s: file extension %q missing dot", name, exp.FileExt())
		}
	}
}

func TestExport_WritesRenderedFile(t *testing.T) {
	reg := NewRegistry(testLogger())
	path := filepath.Join(t.TempDir(), "cut.edl")
	if err := Export(reg["edl"], testTimeline(24), "Wedding Cut", path); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(got), "TITLE: Wedding Cut") {
		t.Errorf("exported file missing rendered content: %q", got)
	}
}

// Every format must place the same frames at the same record positions;
// only the unit and syntax differ.
func TestFormats_DurationParity(t *testing.T) {
	tl := testTimeline(24)
	reg := NewRegistry(testLogger())

	render := func(name string) string {
		t.Helper()
		out, err := reg[name].Render(tl, "")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		return string(out)
	}

	// 384 total frames: record out 16s in the EDL, 384/24s in FCPXML,
	// 384 frames in XMEML v4, 384 frames of ticks in v5.
	if doc := render("edl"); !strings.Contains(doc, "00:00:16:00") {
		t.Errorf("edl total record out mismatch: %q", doc)
	}
	if doc := render("fcpxml"); !strings.Contains(doc, `duration="384/24s"`) {
		t.Errorf("fcpxml sequence duration mismatch: %q", doc)
	}
	if doc := render("resolve"); !strings.Contains(doc, "<duration>384</duration>") {
		t.Errorf("resolve sequence duration mismatch: %q", doc)
	}
	if doc := render("premiere"); !strings.Contains(doc, "<duration>4064256000000</duration>") {
		t.Errorf("premiere sequence duration mismatch: %q", doc)
	}
}

func TestFormatScore(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{92, "92"},
		{87.5, "87.5"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := formatScore(tc.in); got != tc.want {
			t.Errorf("formatScore(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStem(t *testing.T) {
	if got := stem("/media/wedding/Ceremony_001.mp4"); got != "Ceremony_001" {
		t.Errorf("stem = %q", got)
	}
	if got := stem("noext"); got != "noext" {
		t.Errorf("stem = %q", got)
	}
}

func TestFileURL_Absolute(t *testing.T) {
	if got := fileURL("/media/a.mp4"); got != "file:///media/a.mp4" {
		t.Errorf("fileURL = %q", got)
	}
}
