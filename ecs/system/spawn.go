package system

import "github.com/milk9111/phaserunner/ecs"

// Spawner keeps the corridor populated ahead of the player.
type Spawner interface {
	TopUp(w *ecs.World, score int, speed, viewHeight float64) int
}

// SpawnSystem tops the corridor up once per frame.
type SpawnSystem struct {
	spawner Spawner
}

func NewSpawnSystem(spawner Spawner) *SpawnSystem {
	return &SpawnSystem{spawner: spawner}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.spawner == nil || w.Run().Dead {
		return
	}
	run := w.Run()
	s.spawner.TopUp(w, run.Score, run.Speed, w.Height())
}
