package system

import (
	"math"

	"github.com/milk9111/phaserunner/ecs"
)

// CooldownSystem drains the phase toggle lockout.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}
	p := w.Player()
	p.Cooldown = math.Max(0, p.Cooldown-w.DT())
}
