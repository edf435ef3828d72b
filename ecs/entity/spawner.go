package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// Rules tune the obstacle stream.
type Rules struct {
	// UnlockScore is the score at which special patterns may appear.
	UnlockScore int
	// MinBase is how many RectBands must follow a special before the next
	// one is considered.
	MinBase int
	// ForceBase forces a special after this many RectBands.
	ForceBase int
	// SpecialChance is the per-spawn roll once MinBase is reached.
	SpecialChance float64
	// TargetFraction of the viewport height is kept generated above it.
	TargetFraction float64
	// SafetyCap bounds spawns per TopUp.
	SafetyCap int
	// StreakLimit is passed to the phase guard.
	StreakLimit int
	// StartTopY is the cursor at the start of a run.
	StartTopY float64
}

func DefaultRules() Rules {
	return Rules{
		UnlockScore:    50,
		MinBase:        5,
		ForceBase:      10,
		SpecialChance:  0.3,
		TargetFraction: 0.9,
		SafetyCap:      40,
		StreakLimit:    DefaultStreakLimit,
		StartTopY:      -80,
	}
}

// Debug is a read-only view of the spawner counters.
type Debug struct {
	Count        int
	Last         PatternKind
	Streak       int
	StreakPhase  component.Phase
	SinceSpecial int
	Forced       int
}

// Spawner streams chunks into a world ahead of the player. It owns the phase
// guard and every counter, so independent spawners never share state.
type Spawner struct {
	rules Rules
	src   common.Source
	guard *PhaseGuard

	count        int
	sinceSpecial int
	last         PatternKind
}

func NewSpawner(rules Rules, src common.Source) *Spawner {
	if src == nil {
		src = common.NewSource(0)
	}
	return &Spawner{
		rules: rules,
		src:   src,
		guard: NewPhaseGuard(rules.StreakLimit),
	}
}

// Reset clears the counters and puts the world cursor back to its start.
func (s *Spawner) Reset(w *ecs.World) {
	s.count = 0
	s.sinceSpecial = 0
	s.last = PatternRectBand
	s.guard.Reset()
	if w != nil {
		w.Run().TopY = s.rules.StartTopY
	}
}

// TopUp spawns chunks until the corridor reaches TargetFraction of the
// viewport above the screen, or SafetyCap spawns happened. It returns how
// many chunks were added.
func (s *Spawner) TopUp(w *ecs.World, score int, speed, viewHeight float64) int {
	target := viewHeight * s.rules.TargetFraction
	n := 0
	for -w.Run().TopY < target {
		if n >= s.rules.SafetyCap {
			w.Events().Push(ecs.Event{Kind: ecs.EventSpawnLimit, Value: n})
			break
		}
		s.SpawnOne(w, score, speed)
		n++
	}
	return n
}

// SpawnOne adds a single chunk at the world cursor and returns its kind.
func (s *Spawner) SpawnOne(w *ecs.World, score int, speed float64) PatternKind {
	kind := PatternRectBand
	if score >= s.rules.UnlockScore && s.sinceSpecial >= s.rules.MinBase {
		if s.sinceSpecial >= s.rules.ForceBase || s.src.Float64() < s.rules.SpecialChance {
			kind = Specials[common.Pick(s.src, len(Specials))]
		}
	}

	chunk := Build(kind, Params{
		Cursor: w.Run().TopY,
		Speed:  speed,
		Width:  w.Width(),
		Rand:   s.src,
		Guard:  s.guard,
	})
	chunk.Commit(w)

	if chunk.Forced {
		streak, phase := s.guard.Streak()
		w.Events().Push(ecs.Event{Kind: ecs.EventPhaseLock, Phase: phase, Value: streak})
	}
	if kind == PatternRectBand {
		s.sinceSpecial++
	} else {
		w.Events().Push(ecs.Event{Kind: ecs.EventSpecial, Value: s.sinceSpecial, Note: kind.String()})
		s.sinceSpecial = 0
	}

	w.Run().TopY = chunk.Top
	s.count++
	s.last = kind
	return kind
}

// Debug snapshots the spawner counters.
func (s *Spawner) Debug() Debug {
	streak, phase := s.guard.Streak()
	return Debug{
		Count:        s.count,
		Last:         s.last,
		Streak:       streak,
		StreakPhase:  phase,
		SinceSpecial: s.sinceSpecial,
		Forced:       s.guard.Forced(),
	}
}
