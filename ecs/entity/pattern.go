package entity

import (
	"fmt"

	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

// PatternKind enumerates the obstacle catalog.
type PatternKind uint8

const (
	PatternRectBand PatternKind = iota
	PatternGate
	PatternZigZag
	PatternSplitRail
	PatternStaggeredBars
	PatternMovingWindow
	PatternNeutralGate
	PatternMovingBarrier
	PatternNeutralMaze
	PatternBouncingGate
)

// Specials lists every pattern besides the base RectBand, in the order the
// spawner draws from.
var Specials = []PatternKind{
	PatternGate,
	PatternZigZag,
	PatternSplitRail,
	PatternStaggeredBars,
	PatternMovingWindow,
	PatternNeutralGate,
	PatternMovingBarrier,
	PatternNeutralMaze,
	PatternBouncingGate,
}

// AllPatterns is the whole catalog, base pattern first.
var AllPatterns = append([]PatternKind{PatternRectBand}, Specials...)

var patternNames = map[PatternKind]string{
	PatternRectBand:      "RectBand",
	PatternGate:          "Gate",
	PatternZigZag:        "ZigZag",
	PatternSplitRail:     "SplitRail",
	PatternStaggeredBars: "StaggeredBars",
	PatternMovingWindow:  "MovingWindow",
	PatternNeutralGate:   "NeutralGate",
	PatternMovingBarrier: "MovingBarrier",
	PatternNeutralMaze:   "NeutralMaze",
	PatternBouncingGate:  "BouncingGate",
}

func (k PatternKind) String() string {
	if name, ok := patternNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PatternKind(%d)", uint8(k))
}

func (k PatternKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Params is everything a generator may read. Generators never touch the
// world; they only describe what to add.
type Params struct {
	Cursor float64
	Speed  float64
	Width  float64
	Rand   common.Source
	Guard  *PhaseGuard
}

// Chunk is the output of one generator call. Group ids inside a chunk are
// local (1, 2, ...) and are remapped to world groups on Commit.
type Chunk struct {
	Kind  PatternKind      `yaml:"kind"`
	Bands []component.Band `yaml:"bands"`
	Orbs  []component.Orb  `yaml:"orbs"`
	Top   float64          `yaml:"top"`

	// Demands lists every phase decision the chunk made, in order.
	Demands []component.Phase `yaml:"demands"`
	// Forced reports whether the phase guard broke a streak for this chunk.
	Forced bool `yaml:"forced,omitempty"`
}

// Build runs the generator for kind.
func Build(kind PatternKind, p Params) Chunk {
	if p.Guard == nil {
		p.Guard = NewPhaseGuard(DefaultStreakLimit)
	}
	c := Chunk{Kind: kind}
	switch kind {
	case PatternRectBand:
		buildRectBand(&c, p)
	case PatternGate:
		buildGate(&c, p, gateGapWidth)
	case PatternZigZag:
		buildZigZag(&c, p)
	case PatternSplitRail:
		buildSplitRail(&c, p)
	case PatternStaggeredBars:
		buildStaggeredBars(&c, p)
	case PatternMovingWindow:
		buildMovingWindow(&c, p)
	case PatternNeutralGate:
		buildGate(&c, p, neutralGateGapWidth)
	case PatternMovingBarrier:
		buildMovingBarrier(&c, p)
	case PatternNeutralMaze:
		buildNeutralMaze(&c, p)
	case PatternBouncingGate:
		buildBouncingGate(&c, p)
	default:
		panic(fmt.Sprintf("entity: unknown pattern %v", kind))
	}
	return c
}

// Commit adds the chunk's bands and orbs to w, allocating world groups for
// the chunk-local group ids.
func (c *Chunk) Commit(w *ecs.World) {
	groups := map[component.GroupID]component.GroupID{}
	remap := func(local component.GroupID) component.GroupID {
		if local == 0 {
			return 0
		}
		if g, ok := groups[local]; ok {
			return g
		}
		g := w.NewGroup()
		groups[local] = g
		return g
	}

	for _, b := range c.Bands {
		b.Group = remap(b.Group)
		if b.Motion != nil {
			m := *b.Motion
			b.Motion = &m
		}
		w.AddBand(b)
	}
	for _, o := range c.Orbs {
		if o.Follow != nil {
			f := *o.Follow
			f.Group = remap(f.Group)
			o.Follow = &f
		}
		w.AddOrb(o)
	}
}

// demand draws a guarded phase and records it on the chunk.
func (c *Chunk) demand(p Params) component.Phase {
	phase, forced := p.Guard.Pick(p.Rand)
	p.Guard.Track(phase)
	c.Demands = append(c.Demands, phase)
	c.Forced = c.Forced || forced
	return phase
}

// follow records a phase that is implied by an earlier decision rather than
// drawn.
func (c *Chunk) follow(p Params, phase component.Phase) {
	p.Guard.Track(phase)
	c.Demands = append(c.Demands, phase)
}

func (c *Chunk) band(b component.Band) {
	c.Bands = append(c.Bands, b)
}

func (c *Chunk) orb(x, y, r float64, phase component.Phase) {
	c.Orbs = append(c.Orbs, component.Orb{X: x, Y: y, R: r, Required: phase, Visual: phase})
}
