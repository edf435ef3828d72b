package entity

import (
	"math"

	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const (
	rectMinHeight = 40.0
	rectMaxHeight = 240.0
	rectMinGap    = 170.0
	rectOrbMargin = 40.0
	orbRadius     = 8.0
)

// RectGap is the clearance above the previous obstacle at the given scroll
// speed.
func RectGap(speed float64) float64 {
	return math.Max(rectMinGap, speed*0.5)
}

// buildRectBand emits one full-width band and an orb just below it that only
// a player already in the band's phase can take.
func buildRectBand(c *Chunk, p Params) {
	gap := RectGap(p.Speed)
	height := common.Between(p.Rand, rectMinHeight, rectMaxHeight)
	phase := c.demand(p)

	top := p.Cursor - (height + gap)
	orbY := top + height + math.Min(70, gap*0.45)
	orbX := common.Between(p.Rand, rectOrbMargin, p.Width-rectOrbMargin)

	c.band(component.Band{Top: top, Height: height, Width: p.Width, Kind: component.KindFor(phase)})
	c.orb(orbX, orbY, orbRadius, phase)
	c.Top = top
}
