package runner

import (
	"github.com/milk9111/phaserunner/ecs/component"
	"github.com/milk9111/phaserunner/ecs/entity"
)

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the runner.
type Snapshot struct {
	State  State
	Width  float64
	Height float64

	Bands  []component.Band
	Orbs   []component.Orb
	Player component.Player

	Score    int
	Best     int
	Speed    float64
	Cooldown float64
	// CooldownMax is the full cooldown, for drawing a progress ring.
	CooldownMax float64

	Debug    entity.Debug
	HasDebug bool
}

func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.world
	run := w.Run()
	s := Snapshot{
		State:       r.state,
		Width:       w.Width(),
		Height:      w.Height(),
		Bands:       w.Bands(),
		Orbs:        w.Orbs(),
		Player:      *w.Player(),
		Score:       run.Score,
		Best:        run.Best,
		Speed:       run.Speed,
		Cooldown:    w.Player().Cooldown,
		CooldownMax: r.tuning.Player.PhaseCooldownMs,
	}
	for i := range s.Bands {
		if m := s.Bands[i].Motion; m != nil {
			mc := *m
			s.Bands[i].Motion = &mc
		}
	}
	for i := range s.Orbs {
		if f := s.Orbs[i].Follow; f != nil {
			fc := *f
			s.Orbs[i].Follow = &fc
		}
	}
	if d, ok := r.spawner.(debugger); ok {
		s.Debug = d.Debug()
		s.HasDebug = true
	}
	return s
}
