package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBestRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested"))

	best, err := s.LoadBest()
	if err != nil || best != 0 {
		t.Fatalf("missing file should read as 0, got %d, %v", best, err)
	}
	if err := s.SaveBest(1234); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	best, err = s.LoadBest()
	if err != nil || best != 1234 {
		t.Fatalf("LoadBest = %d, %v; want 1234", best, err)
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestLoadBestCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, bestFile), []byte("best: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	best, err := NewStore(dir).LoadBest()
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if best != 0 {
		t.Fatalf("best on error = %d, want 0", best)
	}
}

func TestSettings(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want Settings
	}{
		{"missing", "", DefaultSettings()},
		{"keys", "control: keys\nsound: false\n", Settings{Control: ControlKeys, Sound: false, Vibration: true}},
		{"unknown_control", "control: tilt\nshow_debug: true\n", Settings{Control: ControlDrag, ShowDebug: true, Sound: true, Vibration: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			if c.doc != "" {
				if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(c.doc), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := NewStore(dir).LoadSettings()
			if err != nil {
				t.Fatalf("LoadSettings: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	in := Settings{Control: ControlKeys, ShowDebug: true}
	if err := s.SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
	if in.NextControl() != ControlDrag {
		t.Fatalf("NextControl should cycle back to drag")
	}
}
