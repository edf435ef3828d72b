package main

import (
	"math"

	"github.com/milk9111/phaserunner/ecs/component"
	"github.com/milk9111/phaserunner/runner"
)

type cellKind int

const (
	cellSolid cellKind = iota
	cellGhost
	cellNeutral
	cellOrbSolid
	cellOrbGhost
	cellPlayerSolid
	cellPlayerGhost
)

// grid maps corridor coordinates onto a cols x rows terminal area.
type grid struct {
	cols, rows    int
	width, height float64
}

func (g grid) col(x float64) int {
	return int(math.Floor(x / g.width * float64(g.cols)))
}

func (g grid) row(y float64) int {
	return int(math.Floor(y / g.height * float64(g.rows)))
}

func (g grid) x(col int) float64 {
	return float64(col) * g.width / float64(g.cols)
}

func bandCell(k component.BandKind) cellKind {
	switch k {
	case component.BandSolid:
		return cellSolid
	case component.BandGhost:
		return cellGhost
	default:
		return cellNeutral
	}
}

// paint calls set for every covered cell of s, bands first, then orbs, then
// the player, so later calls overwrite earlier ones.
func paint(s runner.Snapshot, g grid, set func(col, row int, r rune, k cellKind)) {
	put := func(col, row int, r rune, k cellKind) {
		if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
			return
		}
		set(col, row, r, k)
	}

	for _, b := range s.Bands {
		r := '█'
		if b.Kind == component.BandGhost {
			r = '▒'
		}
		if b.Width <= 0 {
			continue
		}
		r0, r1 := g.row(b.Top), g.row(b.Top+b.Height-1)
		c0, c1 := g.col(b.X), g.col(b.X+b.Width-1)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				put(col, row, r, bandCell(b.Kind))
			}
		}
	}

	for _, o := range s.Orbs {
		if o.Taken {
			continue
		}
		k := cellOrbSolid
		if o.Visual == component.PhaseGhost {
			k = cellOrbGhost
		}
		put(g.col(o.X), g.row(o.Y), '●', k)
	}

	p := s.Player
	k := cellPlayerSolid
	r := '◆'
	if p.Phase == component.PhaseGhost {
		k = cellPlayerGhost
		r = '◇'
	}
	put(g.col(p.X), g.row(p.Y), r, k)
}
