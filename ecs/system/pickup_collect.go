package system

import (
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// PickupCollectSystem awards Value for every untaken orb the player touches
// while in the orb's phase. Mismatched orbs are left alone.
type PickupCollectSystem struct {
	Value int
}

func NewPickupCollectSystem(value int) *PickupCollectSystem {
	return &PickupCollectSystem{Value: value}
}

// Collectable reports whether p can take o this frame.
func Collectable(p *component.Player, o *component.Orb) bool {
	if o.Taken || o.Required != p.Phase {
		return false
	}
	reach := p.R + o.R
	return p.Pos().DistanceSq(o.Pos()) <= reach*reach
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}
	p := w.Player()
	run := w.Run()

	w.ForEachOrb(func(_ ecs.Entity, o *component.Orb) {
		if !Collectable(p, o) {
			return
		}
		o.Taken = true
		run.Score += s.Value
		w.Events().Push(ecs.Event{Kind: ecs.EventPickup, Phase: o.Required, Value: s.Value})
	})
}
