package system

import (
	"math"

	"github.com/milk9111/phaserunner/ecs"
)

// ScoreSystem awards survival points and ramps the scroll speed.
type ScoreSystem struct {
	// MsPerPoint is the survival time worth one point.
	MsPerPoint float64
	// Accel is the speed gained per millisecond.
	Accel float64
	// SpeedCap bounds the scroll speed; zero disables the cap.
	SpeedCap float64
}

func NewScoreSystem(msPerPoint, accel, speedCap float64) *ScoreSystem {
	return &ScoreSystem{MsPerPoint: msPerPoint, Accel: accel, SpeedCap: speedCap}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil || w.Run().Dead {
		return
	}
	run := w.Run()
	dt := w.DT()

	// The remainder carries over so short frames still add up to one point per MsPerPoint.
	if s.MsPerPoint > 0 {
		run.SurvivalMs += dt
		points := math.Floor(run.SurvivalMs / s.MsPerPoint)
		run.Score += int(points)
		run.SurvivalMs -= points * s.MsPerPoint
	}

	run.Speed += dt * s.Accel
	if s.SpeedCap > 0 && run.Speed > s.SpeedCap {
		run.Speed = s.SpeedCap
	}
}
