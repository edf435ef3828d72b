package component

import "github.com/jakecoffman/cp"

// Player is the runner token. Y stays fixed during a run; only X follows
// input.
type Player struct {
	X, Y  float64
	R     float64
	Phase Phase
	// Cooldown is the remaining phase toggle lockout in milliseconds.
	Cooldown float64
}

func (p *Player) Pos() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func (p *Player) Bounds() cp.BB {
	return cp.NewBBForCircle(p.Pos(), p.R)
}
