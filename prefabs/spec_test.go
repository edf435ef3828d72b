package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedTuningMatchesDefault(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	got, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	want := DefaultTuning()
	got.Palette = PaletteSpec{}
	if got != want {
		t.Fatalf("embedded tuning differs from default:\n got %+v\nwant %+v", got, want)
	}
}

func TestDiskOverride(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	doc := []byte("corridor: {width: 300, height: 500}\nspeed: {start: 100, cap: 0}\nplayer: {radius: 10, y_fraction: 0.5}\nscoring: {ms_per_point: 20}\nframe: {max_dt_ms: 33}\nspawn: {special_chance: 0.5, target_fraction: 1, safety_cap: 10, streak_limit: 3}\n")
	if err := os.WriteFile(filepath.Join(Dir, TuningFile), doc, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.Corridor.Width != 300 || got.Speed.Cap != 0 || got.Spawn.StreakLimit != 3 {
		t.Fatalf("disk override not applied: %+v", got)
	}
	if _, ok := ModTime(TuningFile); !ok {
		t.Fatalf("ModTime should see the disk copy")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_width", func(t *Tuning) { t.Corridor.Width = 0 }},
		{"narrower_than_patterns", func(t *Tuning) { t.Corridor.Width = MinCorridorWidth - 1 }},
		{"negative_height", func(t *Tuning) { t.Corridor.Height = -1 }},
		{"zero_speed", func(t *Tuning) { t.Speed.Start = 0 }},
		{"cap_below_start", func(t *Tuning) { t.Speed.Cap = 100 }},
		{"player_too_wide", func(t *Tuning) { t.Player.Radius = 300 }},
		{"y_fraction_out", func(t *Tuning) { t.Player.YFraction = 1 }},
		{"zero_ms_per_point", func(t *Tuning) { t.Scoring.MsPerPoint = 0 }},
		{"zero_dt_clamp", func(t *Tuning) { t.Frame.MaxDTMs = 0 }},
		{"chance_above_one", func(t *Tuning) { t.Spawn.SpecialChance = 1.5 }},
		{"zero_safety_cap", func(t *Tuning) { t.Spawn.SafetyCap = 0 }},
		{"force_below_min", func(t *Tuning) { t.Spawn.ForceBase = 2 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tun := DefaultTuning()
			c.mutate(&tun)
			if err := tun.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	narrowest := DefaultTuning()
	narrowest.Corridor.Width = MinCorridorWidth
	if err := narrowest.Validate(); err != nil {
		t.Fatalf("corridor at the minimum width rejected: %v", err)
	}
}

func TestParseTuningBadYAML(t *testing.T) {
	if _, err := ParseTuning([]byte("corridor: [")); err == nil || errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("expected a decode error, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	tun, err := ParseTuning([]byte("corridor: {width: 420, height: 720}\nspeed: {start: 260}\nplayer: {radius: 18, y_fraction: 0.75}\nscoring: {ms_per_point: 40}\nframe: {max_dt_ms: 50}\nspawn: {target_fraction: 0.9, safety_cap: 40, streak_limit: 5}\npalette: {solid: \"#102030\", ghost: \"#10203080\"}\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got := tun.Palette.Solid.Or(color.White); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("solid = %v", got)
	}
	if got := tun.Palette.Ghost.Or(color.White); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}) {
		t.Fatalf("ghost = %v", got)
	}
	if got := tun.Palette.Neutral.Or(color.White); got != color.White {
		t.Fatalf("unset color should fall back, got %v", got)
	}
}

func TestWatcherReportsTuningWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if !IsTuningFile(name) {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for tuning write")
	}
}
