package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const windowWidth = 100.0

// buildMovingWindow cuts a randomly placed window into a phase wall. The
// window does not move once spawned.
func buildMovingWindow(c *Chunk, p Params) {
	phase := c.demand(p)
	kind := component.KindFor(phase)

	top := p.Cursor - 120
	x := common.Between(p.Rand, 0, p.Width-windowWidth)

	if x > 0 {
		c.band(component.Band{Top: top, Height: 60, X: 0, Width: x, Kind: kind})
	}
	if right := x + windowWidth; right < p.Width {
		c.band(component.Band{Top: top, Height: 60, X: right, Width: p.Width - right, Kind: kind})
	}
	c.orb(x+windowWidth/2, top-30, orbRadius, phase)
	c.Top = top
}
