package entity

import "github.com/milk9111/phaserunner/ecs/component"

const (
	gateGapWidth        = 100.0
	neutralGateGapWidth = 80.0
	gateWallHeight      = 80.0
	gateBarrierHeight   = 40.0
	gateBarrierInset    = 20.0
	gateRise            = 120.0
)

// buildGate flanks a centered gap with neutral walls and fills the gap with a
// phase barrier. Gate and NeutralGate differ only in gap width.
func buildGate(c *Chunk, p Params, gapWidth float64) {
	phase := c.demand(p)

	top := p.Cursor - gateRise
	gapX := (p.Width - gapWidth) / 2

	c.band(component.Band{Top: top, Height: gateWallHeight, X: 0, Width: gapX, Kind: component.BandNeutral})
	c.band(component.Band{Top: top, Height: gateWallHeight, X: gapX + gapWidth, Width: p.Width - (gapX + gapWidth), Kind: component.BandNeutral})
	c.band(component.Band{Top: top + gateBarrierInset, Height: gateBarrierHeight, X: gapX, Width: gapWidth, Kind: component.KindFor(phase)})
	c.orb(gapX+gapWidth/2, top-20, orbRadius, phase)
	c.Top = top
}
