package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file has out of range values.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

const TuningFile = "runner.yaml"

// MinCorridorWidth fits the widest fixed pattern piece, the split rail orb band.
const MinCorridorWidth = 200.0

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning holds every number a run is played with.
type Tuning struct {
	Name     string       `yaml:"name"`
	Corridor CorridorSpec `yaml:"corridor"`
	Speed    SpeedSpec    `yaml:"speed"`
	Player   PlayerSpec   `yaml:"player"`
	Scoring  ScoringSpec  `yaml:"scoring"`
	Frame    FrameSpec    `yaml:"frame"`
	Spawn    SpawnSpec    `yaml:"spawn"`
	Palette  PaletteSpec  `yaml:"palette"`
}

type CorridorSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpeedSpec struct {
	Start float64 `yaml:"start"`
	// Cap of zero leaves the speed uncapped.
	Cap        float64 `yaml:"cap"`
	AccelPerMs float64 `yaml:"accel_per_ms"`
}

type PlayerSpec struct {
	Radius          float64 `yaml:"radius"`
	YFraction       float64 `yaml:"y_fraction"`
	EdgeMargin      float64 `yaml:"edge_margin"`
	PhaseCooldownMs float64 `yaml:"phase_cooldown_ms"`
}

type ScoringSpec struct {
	OrbValue   int     `yaml:"orb_value"`
	MsPerPoint float64 `yaml:"ms_per_point"`
}

type FrameSpec struct {
	MaxDTMs    float64 `yaml:"max_dt_ms"`
	CullMargin float64 `yaml:"cull_margin"`
}

type SpawnSpec struct {
	UnlockScore    int     `yaml:"unlock_score"`
	MinBase        int     `yaml:"min_base"`
	ForceBase      int     `yaml:"force_base"`
	SpecialChance  float64 `yaml:"special_chance"`
	TargetFraction float64 `yaml:"target_fraction"`
	SafetyCap      int     `yaml:"safety_cap"`
	StreakLimit    int     `yaml:"streak_limit"`
	StartTopY      float64 `yaml:"start_top_y"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Solid      *YAMLColor `yaml:"solid"`
	Ghost      *YAMLColor `yaml:"ghost"`
	Neutral    *YAMLColor `yaml:"neutral"`
	Text       *YAMLColor `yaml:"text"`
}

// LoadTuning reads runner.yaml, preferring a disk copy over the embedded one.
func LoadTuning() (Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"corridor.width", t.Corridor.Width >= MinCorridorWidth},
		{"corridor.height", t.Corridor.Height > 0},
		{"speed.start", t.Speed.Start > 0},
		{"speed.cap", t.Speed.Cap == 0 || t.Speed.Cap >= t.Speed.Start},
		{"speed.accel_per_ms", t.Speed.AccelPerMs >= 0},
		{"player.radius", t.Player.Radius > 0 && 2*(t.Player.Radius+t.Player.EdgeMargin) < t.Corridor.Width},
		{"player.y_fraction", t.Player.YFraction > 0 && t.Player.YFraction < 1},
		{"player.phase_cooldown_ms", t.Player.PhaseCooldownMs >= 0},
		{"scoring.ms_per_point", t.Scoring.MsPerPoint > 0},
		{"frame.max_dt_ms", t.Frame.MaxDTMs > 0},
		{"spawn.special_chance", t.Spawn.SpecialChance >= 0 && t.Spawn.SpecialChance <= 1},
		{"spawn.target_fraction", t.Spawn.TargetFraction > 0},
		{"spawn.safety_cap", t.Spawn.SafetyCap > 0},
		{"spawn.streak_limit", t.Spawn.StreakLimit > 0},
		{"spawn.force_base", t.Spawn.ForceBase >= t.Spawn.MinBase},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.name)
		}
	}
	return nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// Or returns c, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// DefaultTuning mirrors the embedded runner.yaml without touching disk.
func DefaultTuning() Tuning {
	return Tuning{
		Name:     "phase_runner",
		Corridor: CorridorSpec{Width: 420, Height: 720},
		Speed:    SpeedSpec{Start: 260, Cap: 350, AccelPerMs: 0.012},
		Player:   PlayerSpec{Radius: 18, YFraction: 0.75, EdgeMargin: 8, PhaseCooldownMs: 300},
		Scoring:  ScoringSpec{OrbValue: 5, MsPerPoint: 40},
		Frame:    FrameSpec{MaxDTMs: 50, CullMargin: 60},
		Spawn: SpawnSpec{
			UnlockScore:    50,
			MinBase:        5,
			ForceBase:      10,
			SpecialChance:  0.3,
			TargetFraction: 0.9,
			SafetyCap:      40,
			StreakLimit:    5,
			StartTopY:      -80,
		},
	}
}
