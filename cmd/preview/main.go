package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/phaserunner/assets"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
	"golang.org/x/image/colornames"
)

type previewGame struct {
	cfg         previewConfig
	stages      []*stage
	current     int
	tick        int
	ticksPerPat int
	face        text.Face
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.show(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.show(g.current - 1)
	default:
		g.tick++
		if g.ticksPerPat > 0 && g.tick >= g.ticksPerPat {
			g.show(g.current + 1)
		}
	}
	g.stages[g.current].step(1000.0 / 60)
	return nil
}

func (g *previewGame) show(i int) {
	n := len(g.stages)
	g.current = ((i % n) + n) % n
	g.tick = 0
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	s := g.stages[g.current]

	s.world.ForEachBand(func(_ ecs.Entity, b *component.Band) {
		c := colornames.Slategray
		switch b.Kind {
		case component.BandSolid:
			c = colornames.Dodgerblue
		case component.BandGhost:
			c = colornames.Mediumorchid
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Top), float32(b.Width), float32(b.Height), c, false)
	})
	s.world.ForEachOrb(func(_ ecs.Entity, o *component.Orb) {
		c := colornames.Dodgerblue
		if o.Visual == component.PhaseGhost {
			c = colornames.Mediumorchid
		}
		vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(o.R), c, true)
	})

	label := fmt.Sprintf("%d/%d %s  demands %v", g.current+1, len(g.stages), s.chunk.Kind, s.chunk.Demands)
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 12)
	op.ColorScale.ScaleWithColor(colornames.Whitesmoke)
	text.Draw(screen, label, g.face, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}

func main() {
	seed := flag.Uint64("seed", 1, "random seed")
	speed := flag.Float64("speed", 260, "scroll speed passed to the generators")
	width := flag.Float64("width", 420, "corridor width")
	height := flag.Float64("height", 720, "corridor height")
	seconds := flag.Float64("every", 3, "seconds per pattern (0 disables auto-advance)")
	dumpYAML := flag.Bool("dump", false, "write every pattern as YAML to stdout and exit")
	flag.Parse()

	cfg := previewConfig{Seed: *seed, Width: *width, Height: *height, Speed: *speed}
	chunks := buildAll(cfg)

	if *dumpYAML {
		if err := dump(os.Stdout, cfg, chunks); err != nil {
			log.Fatal(err)
		}
		return
	}

	g := &previewGame{cfg: cfg, ticksPerPat: int(*seconds * 60), face: assets.Face(14)}
	for _, c := range chunks {
		g.stages = append(g.stages, newStage(cfg, c))
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Pattern Preview")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
