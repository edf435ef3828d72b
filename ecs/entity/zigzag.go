package entity

import "github.com/milk9111/phaserunner/ecs/component"

// buildZigZag lays two thin, opposed barriers that overlap in the middle
// fifth of the corridor, so crossing both takes a phase switch.
func buildZigZag(c *Chunk, p Params) {
	first := c.demand(p)
	second := first.Opposite()
	c.follow(p, second)

	top := p.Cursor - 140
	span := p.Width * 0.6

	c.band(component.Band{Top: top, Height: 30, X: 0, Width: span, Kind: component.KindFor(first), Thin: true})
	c.band(component.Band{Top: top + 60, Height: 30, X: p.Width * 0.4, Width: span, Kind: component.KindFor(second), Thin: true})
	c.orb(p.Width*0.8, top-20, orbRadius, first)
	c.orb(p.Width*0.2, top+40, orbRadius, second)
	c.Top = top
}
