package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const barrierWidth = 120.0

// buildMovingBarrier spawns one sliding phase barrier. Its orb is placed once
// above the spawn position and does not track the barrier.
func buildMovingBarrier(c *Chunk, p Params) {
	phase := c.demand(p)

	top := p.Cursor - 120
	x := common.Between(p.Rand, 0, p.Width-barrierWidth)
	speed := common.Between(p.Rand, 60, 100)
	dir := -1.0
	if common.Coin(p.Rand) {
		dir = 1
	}

	c.band(component.Band{
		Top:    top,
		Height: 40,
		X:      x,
		Width:  barrierWidth,
		Kind:   component.KindFor(phase),
		Motion: &component.Motion{Speed: speed, Dir: dir, Min: 0, Max: p.Width - barrierWidth},
	})
	c.orb(x+barrierWidth/2, top-30, orbRadius, phase)
	c.Top = top
}
