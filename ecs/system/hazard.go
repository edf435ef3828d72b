package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// HazardSystem kills the player on the first band it overlaps that does not
// let its current phase through.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

// overlapsAABB is a strict overlap test; touching edges do not collide.
func overlapsAABB(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// Blocking reports whether a player overlapping band b dies.
func Blocking(p *component.Player, b *component.Band) bool {
	if !overlapsAABB(p.Bounds(), b.Bounds()) {
		return false
	}
	return !b.Kind.Passable(p.Phase)
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}
	p := w.Player()

	var hit *component.Band
	w.ForEachBand(func(_ ecs.Entity, b *component.Band) {
		if hit == nil && Blocking(p, b) {
			hit = b
		}
	})
	if hit == nil {
		return
	}

	w.Run().Dead = true
	w.Events().Push(ecs.Event{Kind: ecs.EventDeath, Phase: p.Phase, Value: w.Run().Score, Note: hit.Kind.String()})
}
