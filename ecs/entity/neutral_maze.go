package entity

import "github.com/milk9111/phaserunner/ecs/component"

const mazeRowHeight = 25.0

// buildNeutralMaze stacks three rows: a neutral row open in the middle, a
// phase bar across the middle, and a neutral row open right of center.
func buildNeutralMaze(c *Chunk, p Params) {
	top := p.Cursor - 160
	phase := c.demand(p)
	w := p.Width

	c.band(component.Band{Top: top, Height: mazeRowHeight, X: 0, Width: w * 0.3, Kind: component.BandNeutral})
	c.band(component.Band{Top: top, Height: mazeRowHeight, X: w * 0.7, Width: w * 0.3, Kind: component.BandNeutral})
	c.band(component.Band{Top: top + 40, Height: mazeRowHeight, X: w * 0.2, Width: w * 0.6, Kind: component.KindFor(phase)})
	c.band(component.Band{Top: top + 80, Height: mazeRowHeight, X: 0, Width: w * 0.4, Kind: component.BandNeutral})
	c.band(component.Band{Top: top + 80, Height: mazeRowHeight, X: w * 0.8, Width: w * 0.2, Kind: component.BandNeutral})

	c.orb(w*0.5, top-20, orbRadius, phase)
	c.orb(w*0.6, top+100, orbRadius, phase)
	c.Top = top
}
