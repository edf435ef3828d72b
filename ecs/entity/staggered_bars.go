package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const (
	staggerBars   = 3
	staggerWidth  = 80.0
	staggerHeight = 25.0
	staggerStep   = 50.0
	staggerOrbR   = 6.0
)

// buildStaggeredBars drops three same-phase bars at random x, each with an orb
// hovering above it.
func buildStaggeredBars(c *Chunk, p Params) {
	phase := c.demand(p)
	kind := component.KindFor(phase)

	top := p.Cursor - 160
	for i := 0; i < staggerBars; i++ {
		y := top + float64(i)*staggerStep
		x := common.Between(p.Rand, 0, p.Width-staggerWidth)
		c.band(component.Band{Top: y, Height: staggerHeight, X: x, Width: staggerWidth, Kind: kind, Thin: true})
		c.orb(x+staggerWidth/2, y-30, staggerOrbR, phase)
	}
	c.Top = top
}
