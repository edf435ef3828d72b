package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const (
	railHeight = 20.0
	railGap    = 80.0
)

func buildSplitRail(c *Chunk, p Params) {
	phase := c.demand(p)
	kind := component.KindFor(phase)

	top := p.Cursor - 120
	c.band(component.Band{Top: top, Height: railHeight, Width: p.Width, Kind: kind})
	c.band(component.Band{Top: top + railHeight + railGap, Height: railHeight, Width: p.Width, Kind: kind})
	c.orb(common.Between(p.Rand, 100, p.Width-100), top+railHeight+railGap/2, orbRadius, phase)
	c.Top = top
}
