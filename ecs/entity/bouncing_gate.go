package entity

import (
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs/component"
)

const (
	bounceGap       = 100.0
	bounceWall      = 80.0
	bounceSpeed     = 80.0
	bounceInset     = 20.0
	bounceGroupSelf = component.GroupID(1)
)

// buildBouncingGate splits a neutral wall into two halves that slide
// independently, with a phase barrier sliding in between. The barrier anchors
// the group and the orb rides above it.
func buildBouncingGate(c *Chunk, p Params) {
	phase := c.demand(p)

	top := p.Cursor - 120
	gapX := common.Between(p.Rand, 0, p.Width-bounceGap)

	randomDir := func() float64 {
		if common.Coin(p.Rand) {
			return 1
		}
		return -1
	}

	leftDir := randomDir()
	rightDir := randomDir()
	barrierDir := randomDir()

	if gapX > 0 {
		c.band(component.Band{
			Top: top, Height: bounceWall, X: 0, Width: gapX, Kind: component.BandNeutral,
			Motion: &component.Motion{Speed: bounceSpeed, Dir: leftDir, Min: 0, Max: p.Width - bounceGap},
			Group:  bounceGroupSelf,
		})
	}
	if right := gapX + bounceGap; right < p.Width {
		c.band(component.Band{
			Top: top, Height: bounceWall, X: right, Width: p.Width - right, Kind: component.BandNeutral,
			Motion: &component.Motion{Speed: bounceSpeed, Dir: rightDir, Min: bounceGap, Max: p.Width},
			Group:  bounceGroupSelf,
		})
	}

	barrierWidth := bounceGap - 2*bounceInset
	c.band(component.Band{
		Top: top + bounceInset, Height: 40, X: gapX + bounceInset, Width: barrierWidth, Kind: component.KindFor(phase),
		Motion: &component.Motion{Speed: bounceSpeed, Dir: barrierDir, Min: bounceInset, Max: p.Width - bounceGap + bounceInset},
		Group:  bounceGroupSelf,
		Anchor: true,
	})

	c.orb(gapX+bounceGap/2, top-20, orbRadius, phase)
	c.Orbs[len(c.Orbs)-1].Follow = &component.Follow{Group: bounceGroupSelf, OffsetX: barrierWidth / 2}
	c.Top = top
}
