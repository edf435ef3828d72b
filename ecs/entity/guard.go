package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

// DefaultStreakLimit is the longest run of same-phase demands allowed.
const DefaultStreakLimit = 5

// PhaseGuard keeps the generator from demanding the same phase too many
// times in a row.
type PhaseGuard struct {
	limit   int
	streak  int
	last    component.Phase
	hasLast bool
	forced  int
}

func NewPhaseGuard(limit int) *PhaseGuard {
	if limit <= 0 {
		limit = DefaultStreakLimit
	}
	return &PhaseGuard{limit: limit}
}

// Pick returns the next phase. Once the streak reaches the limit the
// opposite phase is forced and forced is true.
func (g *PhaseGuard) Pick(src common.Source) (phase component.Phase, forced bool) {
	if g.hasLast && g.streak >= g.limit {
		g.forced++
		return g.last.Opposite(), true
	}
	if common.Coin(src) {
		return component.PhaseSolid, false
	}
	return component.PhaseGhost, false
}

// Track records an issued phase.
func (g *PhaseGuard) Track(phase component.Phase) {
	if g.hasLast && phase == g.last {
		g.streak++
		return
	}
	g.streak = 1
	g.last = phase
	g.hasLast = true
}

// Streak returns the current run length and its phase.
func (g *PhaseGuard) Streak() (int, component.Phase) {
	return g.streak, g.last
}

// Forced counts how many times the guard broke a streak.
func (g *PhaseGuard) Forced() int {
	return g.forced
}

func (g *PhaseGuard) Reset() {
	*g = PhaseGuard{limit: g.limit}
}
