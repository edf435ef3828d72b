package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/phaserunner/assets"
	"github.com/milk9111/phaserunner/ecs/component"
	"github.com/milk9111/phaserunner/prefabs"
	"github.com/milk9111/phaserunner/runner"
	"golang.org/x/image/colornames"
)

type palette struct {
	background color.Color
	solid      color.Color
	ghost      color.Color
	neutral    color.Color
	text       color.Color
}

func newPalette(p prefabs.PaletteSpec) palette {
	return palette{
		background: p.Background.Or(colornames.Midnightblue),
		solid:      p.Solid.Or(colornames.Dodgerblue),
		ghost:      p.Ghost.Or(colornames.Mediumorchid),
		neutral:    p.Neutral.Or(colornames.Slategray),
		text:       p.Text.Or(colornames.Whitesmoke),
	}
}

func (p palette) phase(ph component.Phase) color.Color {
	if ph == component.PhaseGhost {
		return p.ghost
	}
	return p.solid
}

func (p palette) band(k component.BandKind) color.Color {
	switch k {
	case component.BandSolid:
		return p.solid
	case component.BandGhost:
		return p.ghost
	default:
		return p.neutral
	}
}

// withAlpha scales c to the given alpha.
func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

type renderer struct {
	pal   palette
	hud   text.Face
	small text.Face
}

func newRenderer(pal palette) *renderer {
	return &renderer{pal: pal, hud: assets.Face(22), small: assets.Face(12)}
}

func (r *renderer) drawWorld(screen *ebiten.Image, s runner.Snapshot) {
	screen.Fill(r.pal.background)
	if s.State == runner.StateReady {
		return
	}

	for _, b := range s.Bands {
		c := r.pal.band(b.Kind)
		if b.Kind == component.BandGhost {
			c = withAlpha(c, 150)
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Top), float32(b.Width), float32(b.Height), c, false)
		if b.Motion != nil {
			vector.StrokeRect(screen, float32(b.X), float32(b.Top), float32(b.Width), float32(b.Height), 2, colornames.White, false)
		}
	}

	for _, o := range s.Orbs {
		if o.Taken {
			continue
		}
		c := r.pal.phase(o.Visual)
		vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(o.R), c, true)
		vector.StrokeCircle(screen, float32(o.X), float32(o.Y), float32(o.R)+2, 1, colornames.White, true)
	}

	p := s.Player
	pc := r.pal.phase(p.Phase)
	if p.Phase == component.PhaseGhost {
		pc = withAlpha(pc, 170)
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.R), pc, true)
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(p.R), 2, colornames.White, true)
}

func (r *renderer) drawHUD(screen *ebiten.Image, s runner.Snapshot) {
	r.drawText(screen, fmt.Sprintf("%d", s.Score), r.hud, 16, 12, r.pal.text)
	r.drawText(screen, fmt.Sprintf("best %d", s.Best), r.small, 16, 40, r.pal.text)

	if s.CooldownMax > 0 && s.Cooldown > 0 {
		full := float32(s.Width - 32)
		frac := float32(s.Cooldown / s.CooldownMax)
		vector.DrawFilledRect(screen, 16, float32(s.Height)-14, full*frac, 4, r.pal.phase(s.Player.Phase), false)
	}
}

func (r *renderer) drawDebug(screen *ebiten.Image, s runner.Snapshot, fps float64, frames int) {
	y := 64.0
	for _, l := range debugLines(s, fps, frames) {
		r.drawText(screen, l, r.small, 16, y, r.pal.text)
		y += 16
	}
}

func debugLines(s runner.Snapshot, fps float64, frames int) []string {
	lines := []string{
		fmt.Sprintf("fps %.1f  frame %d", fps, frames),
		fmt.Sprintf("speed %.1f  bands %d  orbs %d", s.Speed, len(s.Bands), len(s.Orbs)),
	}
	if s.HasDebug {
		d := s.Debug
		lines = append(lines,
			fmt.Sprintf("chunks %d  last %s", d.Count, d.Last),
			fmt.Sprintf("streak %d %s  forced %d", d.Streak, d.StreakPhase, d.Forced),
			fmt.Sprintf("since special %d", d.SinceSpecial),
		)
	}
	return lines
}

func (r *renderer) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
