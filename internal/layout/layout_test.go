package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := Default()
	if l.Total() != 60 {
		t.Errorf("Total() = %d, want 60", l.Total())
	}
	if len(l.Props) != 3 {
		t.Fatalf("got %d categories, want 3", len(l.Props))
	}
	names := map[string]bool{}
	for _, p := range l.Props {
		names[p.Name] = true
		if p.Count != 20 {
			t.Errorf("%s: count %d, want 20", p.Name, p.Count)
		}
	}
	for _, want := range []string{CandyCane, CottonCandy, Lollipop} {
		if !names[want] {
			t.Errorf("missing category %s", want)
		}
	}
	if len(l.Zones) != 2 {
		t.Errorf("got %d zones, want 2 (house and wagon)", len(l.Zones))
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file: err = %v, want nil", err)
	}
	if l.Total() != Default().Total() {
		t.Errorf("Total() = %d, want default %d", l.Total(), Default().Total())
	}
}

func TestLoadParsesAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := `seed: 42
props:
  - name: CandyCane
    count: 5
    y: 0.5
    scale: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Seed != 42 {
		t.Errorf("Seed = %d, want 42", l.Seed)
	}
	if len(l.Props) != 1 || l.Props[0].Count != 5 || l.Props[0].Scale != 2 {
		t.Errorf("props = %+v", l.Props)
	}
	// Omitted area fields fall back to defaults.
	if l.HalfExtent != 50 || l.Spacing != 3 {
		t.Errorf("HalfExtent=%f Spacing=%f, want 50 and 3", l.HalfExtent, l.Spacing)
	}
	if len(l.Zones) != 2 {
		t.Errorf("got %d zones, want default 2 when omitted", len(l.Zones))
	}
}

func TestLoadBadYAMLReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("props: [not: valid: yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML: err = nil, want parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "layout.yaml")
	want := Default()
	want.Seed = 7
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != 7 || got.Total() != want.Total() || len(got.Zones) != len(want.Zones) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
