package system

import (
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// CullSystem removes bands and orbs that scrolled Margin past the bottom of
// the viewport, and orbs that were taken. It runs last in the frame.
type CullSystem struct {
	Margin float64

	bands []ecs.Entity
	orbs  []ecs.Entity
}

func NewCullSystem(margin float64) *CullSystem {
	return &CullSystem{Margin: margin}
}

func (s *CullSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}
	limit := w.Height() + s.Margin

	s.bands = s.bands[:0]
	w.ForEachBand(func(e ecs.Entity, b *component.Band) {
		if b.Top >= limit {
			s.bands = append(s.bands, e)
		}
	})
	for _, e := range s.bands {
		w.DestroyBand(e)
	}

	s.orbs = s.orbs[:0]
	w.ForEachOrb(func(e ecs.Entity, o *component.Orb) {
		if o.Taken || o.Y >= limit {
			s.orbs = append(s.orbs, e)
		}
	})
	for _, e := range s.orbs {
		w.DestroyOrb(e)
	}
}
