package entity

import (
	"math"
	"testing"

	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
)

const testWidth = 420.0

func build(kind PatternKind, values ...float64) Chunk {
	if len(values) == 0 {
		values = []float64{0.37}
	}
	return Build(kind, Params{
		Cursor: -80,
		Speed:  260,
		Width:  testWidth,
		Rand:   &common.Sequence{Values: values},
		Guard:  NewPhaseGuard(DefaultStreakLimit),
	})
}

func TestRectBandHeightBound(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		src := common.NewSource(seed)
		c := Build(PatternRectBand, Params{Cursor: -80, Speed: 260, Width: testWidth, Rand: src})
		h := c.Bands[0].Height
		if h < rectMinHeight || h > rectMaxHeight {
			t.Fatalf("seed %d: height %v outside [40,240]", seed, h)
		}
	}
	lo := build(PatternRectBand, 0)
	hi := build(PatternRectBand, 0.9999999)
	if lo.Bands[0].Height != 40 || hi.Bands[0].Height > 240 {
		t.Fatalf("extreme draws: lo=%v hi=%v", lo.Bands[0].Height, hi.Bands[0].Height)
	}
}

func TestRectBandGap(t *testing.T) {
	cases := []struct {
		speed float64
		gap   float64
	}{
		{0, 170},
		{-50, 170},
		{260, 170},
		{340, 170},
		{350, 175},
		{600, 300},
	}
	for _, c := range cases {
		got := Build(PatternRectBand, Params{Cursor: -80, Speed: c.speed, Width: testWidth, Rand: &common.Sequence{Values: []float64{0.5}}})
		b := got.Bands[0]
		gap := -80 - (b.Top + b.Height)
		if math.Abs(gap-c.gap) > 1e-9 {
			t.Fatalf("speed %v: gap %v, want %v", c.speed, gap, c.gap)
		}
		if gap < rectMinGap {
			t.Fatalf("speed %v: gap %v below minimum", c.speed, gap)
		}
		o := got.Orbs[0]
		wantY := b.Top + b.Height + math.Min(70, c.gap*0.45)
		if math.Abs(o.Y-wantY) > 1e-9 {
			t.Fatalf("speed %v: orb y %v, want %v", c.speed, o.Y, wantY)
		}
	}
}

func TestRectBandOrbMatchesBand(t *testing.T) {
	for _, v := range []float64{0.2, 0.8} {
		c := build(PatternRectBand, v)
		b, o := c.Bands[0], c.Orbs[0]
		if !b.Kind.Passable(o.Required) || o.Visual != o.Required {
			t.Fatalf("orb %v does not match band %v", o.Required, b.Kind)
		}
		if b.X != 0 || b.Width != testWidth {
			t.Fatalf("rect band should be full width, got x=%v w=%v", b.X, b.Width)
		}
		if o.X < 40 || o.X > testWidth-40 {
			t.Fatalf("orb x %v outside margins", o.X)
		}
		if c.Top != b.Top {
			t.Fatalf("cursor %v should equal band top %v", c.Top, b.Top)
		}
	}
}

func TestPatternShapes(t *testing.T) {
	cases := []struct {
		kind  PatternKind
		bands int
		orbs  int
	}{
		{PatternRectBand, 1, 1},
		{PatternGate, 3, 1},
		{PatternZigZag, 2, 2},
		{PatternSplitRail, 2, 1},
		{PatternStaggeredBars, 3, 3},
		{PatternMovingWindow, 2, 1},
		{PatternNeutralGate, 3, 1},
		{PatternMovingBarrier, 1, 1},
		{PatternNeutralMaze, 5, 2},
		{PatternBouncingGate, 3, 1},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			chunk := build(c.kind)
			if chunk.Kind != c.kind {
				t.Fatalf("kind = %v", chunk.Kind)
			}
			if len(chunk.Bands) != c.bands || len(chunk.Orbs) != c.orbs {
				t.Fatalf("got %d bands %d orbs, want %d %d", len(chunk.Bands), len(chunk.Orbs), c.bands, c.orbs)
			}
			if chunk.Top >= -80 {
				t.Fatalf("cursor did not advance: %v", chunk.Top)
			}
			if len(chunk.Demands) == 0 {
				t.Fatalf("pattern made no phase decision")
			}
			for i, b := range chunk.Bands {
				if b.Width <= 0 || b.Height <= 0 {
					t.Fatalf("band %d degenerate: %+v", i, b)
				}
				if b.X < 0 || b.X+b.Width > testWidth+1e-9 {
					t.Fatalf("band %d outside corridor at spawn: x=%v w=%v", i, b.X, b.Width)
				}
			}
			for i, o := range chunk.Orbs {
				if o.Visual != o.Required {
					t.Fatalf("orb %d visual %v != required %v", i, o.Visual, o.Required)
				}
				if o.Taken {
					t.Fatalf("orb %d spawned taken", i)
				}
			}
		})
	}
}

func TestGateGapWidths(t *testing.T) {
	cases := []struct {
		kind PatternKind
		gap  float64
	}{
		{PatternGate, 100},
		{PatternNeutralGate, 80},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			chunk := build(c.kind)
			left, right, barrier := chunk.Bands[0], chunk.Bands[1], chunk.Bands[2]
			if left.Kind != component.BandNeutral || right.Kind != component.BandNeutral {
				t.Fatalf("walls must be neutral: %v %v", left.Kind, right.Kind)
			}
			if barrier.Kind == component.BandNeutral || barrier.Width != c.gap {
				t.Fatalf("barrier = %+v", barrier)
			}
			if right.X-(left.X+left.Width) != c.gap {
				t.Fatalf("gap between walls = %v", right.X-(left.X+left.Width))
			}
			if mid := barrier.X + barrier.Width/2; mid != testWidth/2 {
				t.Fatalf("gap not centered: %v", mid)
			}
			if o := chunk.Orbs[0]; o.Y >= barrier.Top || !barrier.Kind.Passable(o.Required) {
				t.Fatalf("orb should sit above the barrier and match it: %+v", o)
			}
		})
	}
}

func TestZigZagOpposedPhases(t *testing.T) {
	for _, v := range []float64{0.1, 0.9} {
		c := build(PatternZigZag, v)
		if c.Bands[0].Kind == c.Bands[1].Kind {
			t.Fatalf("zigzag barriers share kind %v", c.Bands[0].Kind)
		}
		if c.Demands[0] == c.Demands[1] {
			t.Fatalf("zigzag demands must alternate")
		}
		for i := range c.Orbs {
			if !c.Bands[i].Kind.Passable(c.Orbs[i].Required) {
				t.Fatalf("orb %d does not match its barrier", i)
			}
		}
		overlapL := c.Bands[1].X
		overlapR := c.Bands[0].X + c.Bands[0].Width
		if overlapR <= overlapL || overlapR-overlapL >= testWidth/2 {
			t.Fatalf("barriers should overlap partially, got [%v,%v]", overlapL, overlapR)
		}
	}
}

func TestSplitRailOrbCentered(t *testing.T) {
	c := build(PatternSplitRail)
	top, bottom := c.Bands[0], c.Bands[1]
	if top.Kind != bottom.Kind {
		t.Fatalf("rails differ: %v %v", top.Kind, bottom.Kind)
	}
	gapTop := top.Top + top.Height
	if bottom.Top-gapTop != railGap {
		t.Fatalf("rail gap = %v", bottom.Top-gapTop)
	}
	if o := c.Orbs[0]; o.Y != gapTop+railGap/2 {
		t.Fatalf("orb y %v not centered in gap", o.Y)
	}
}

func TestMovingWindowEdgePlacement(t *testing.T) {
	c := build(PatternMovingWindow, 0)
	if len(c.Bands) != 1 || c.Bands[0].X != windowWidth {
		t.Fatalf("window at the left edge should leave only the right wall: %+v", c.Bands)
	}
	for _, b := range c.Bands {
		if b.Motion != nil {
			t.Fatalf("moving window walls are static")
		}
	}
}

func TestMovingBarrierOrbIsNotLinked(t *testing.T) {
	c := build(PatternMovingBarrier, 0.25)
	b := c.Bands[0]
	if b.Motion == nil {
		t.Fatalf("barrier should move")
	}
	if b.Motion.Min != 0 || b.Motion.Max != testWidth-barrierWidth {
		t.Fatalf("range = [%v,%v]", b.Motion.Min, b.Motion.Max)
	}
	if b.Motion.Speed < 60 || b.Motion.Speed >= 100 {
		t.Fatalf("speed %v outside [60,100)", b.Motion.Speed)
	}
	if b.Motion.Dir != 1 {
		t.Fatalf("coin 0.25 should pick +1, got %v", b.Motion.Dir)
	}
	if c.Orbs[0].Follow != nil || b.Group != 0 {
		t.Fatalf("moving barrier orb must stay where it spawned")
	}
	if c.Orbs[0].X != b.X+barrierWidth/2 {
		t.Fatalf("orb should spawn over the barrier center")
	}
}

func TestBouncingGateLinksOrb(t *testing.T) {
	c := build(PatternBouncingGate, 0.4)
	var anchor *component.Band
	for i := range c.Bands {
		b := &c.Bands[i]
		if b.Motion == nil || b.Group == 0 {
			t.Fatalf("band %d should move within the group", i)
		}
		if b.Anchor {
			if anchor != nil {
				t.Fatalf("more than one anchor")
			}
			anchor = b
		}
	}
	if anchor == nil || anchor.Kind == component.BandNeutral {
		t.Fatalf("the phase barrier anchors the group: %+v", anchor)
	}
	o := c.Orbs[0]
	if o.Follow == nil || o.Follow.Group != anchor.Group {
		t.Fatalf("orb should follow the anchor group: %+v", o.Follow)
	}
	// The offset is measured from the barrier's left edge. Half the barrier
	// width keeps the orb over the barrier center; half the gap would jump it
	// bounceInset to the right on the first step.
	if want := anchor.Width / 2; o.Follow.OffsetX != want {
		t.Fatalf("follow offset = %v, want half the barrier width %v", o.Follow.OffsetX, want)
	}
	if anchor.X+o.Follow.OffsetX != o.X {
		t.Fatalf("follow offset does not reproduce spawn x: %v + %v != %v", anchor.X, o.Follow.OffsetX, o.X)
	}
}

func TestNeutralMazeLayout(t *testing.T) {
	c := build(PatternNeutralMaze)
	neutral := 0
	rows := map[float64]bool{}
	for _, b := range c.Bands {
		if b.Kind == component.BandNeutral {
			neutral++
		}
		rows[b.Top] = true
	}
	if neutral != 4 || len(rows) != 3 {
		t.Fatalf("maze should have 4 neutral bands over 3 rows, got %d over %d", neutral, len(rows))
	}
}

func TestBuildUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown pattern")
		}
	}()
	build(PatternKind(200))
}

func TestCommitRemapsGroups(t *testing.T) {
	w := ecs.NewWorld(testWidth, 720)
	a := build(PatternBouncingGate, 0.4)
	b := build(PatternBouncingGate, 0.6)
	a.Commit(w)
	b.Commit(w)

	if w.GroupCount() != 2 {
		t.Fatalf("expected 2 groups, got %d", w.GroupCount())
	}
	seen := map[component.GroupID]bool{}
	w.ForEachOrb(func(_ ecs.Entity, o *component.Orb) {
		if o.Follow == nil {
			t.Fatalf("committed orb lost its follow link")
		}
		if _, ok := w.Anchor(o.Follow.Group); !ok {
			t.Fatalf("orb group %d has no anchor", o.Follow.Group)
		}
		seen[o.Follow.Group] = true
	})
	if len(seen) != 2 {
		t.Fatalf("orbs should follow distinct groups, got %v", seen)
	}

	// Committed motion must not alias the chunk's.
	a.Bands[0].Motion.Dir = 42
	w.ForEachBand(func(_ ecs.Entity, band *component.Band) {
		if band.Motion != nil && band.Motion.Dir == 42 {
			t.Fatalf("world band shares motion with chunk")
		}
	})
}

func TestPatternNames(t *testing.T) {
	if len(AllPatterns) != 10 || len(Specials) != 9 {
		t.Fatalf("catalog size = %d/%d", len(AllPatterns), len(Specials))
	}
	for _, k := range AllPatterns {
		if _, ok := patternNames[k]; !ok {
			t.Fatalf("pattern %d has no name", k)
		}
	}
}
