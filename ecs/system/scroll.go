package system

import (
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// ScrollSystem moves the corridor toward the player by the frame's scroll
// distance and advances moving bands. Followers are updated after every band
// has moved so they read this frame's anchor position.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem { return &ScrollSystem{} }

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}

	dt := w.DT()
	v := w.Run().Speed * dt / 1000

	w.ForEachBand(func(_ ecs.Entity, b *component.Band) {
		b.Top += v
		if b.Motion != nil {
			b.X = b.Motion.Advance(b.X, dt)
		}
	})

	w.ForEachOrb(func(_ ecs.Entity, o *component.Orb) {
		o.Y += v
		if o.Follow == nil {
			return
		}
		if anchor, ok := w.Anchor(o.Follow.Group); ok {
			o.X = anchor.X + o.Follow.OffsetX
		}
	})

	w.Run().TopY += v
}
