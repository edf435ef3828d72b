package ecs

import (
	"testing"

	"github.com/milk9111/phaserunner/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(420, 720)
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.AddBand(component.Band{Top: float64(-i * 100), Height: 40, Width: 420}))
			}
			if w.BandCount() != c.create {
				t.Fatalf("expected %d bands, got %d", c.create, w.BandCount())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyBand(ents[c.destroyIndex]) {
					t.Fatalf("DestroyBand should return true for alive entity")
				}
				if _, ok := w.Band(ents[c.destroyIndex]); ok {
					t.Fatalf("band should not be reachable after destruction")
				}
				if w.DestroyBand(ents[c.destroyIndex]) {
					t.Fatalf("second DestroyBand should report false")
				}
				for i, e := range ents {
					if i == c.destroyIndex {
						continue
					}
					if _, ok := w.Band(e); !ok {
						t.Fatalf("surviving band %d lost after swap-remove", i)
					}
				}
			}
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld(420, 720)
	old := w.AddOrb(component.Orb{X: 10, Y: 10, R: 8})
	if !w.DestroyOrb(old) {
		t.Fatalf("destroy failed")
	}
	fresh := w.AddOrb(component.Orb{X: 20, Y: 20, R: 8})
	if fresh.ID != old.ID {
		t.Fatalf("expected slot reuse, got id %d vs %d", fresh.ID, old.ID)
	}
	if _, ok := w.Orb(old); ok {
		t.Fatalf("stale handle must not resolve to recycled slot")
	}
	o, ok := w.Orb(fresh)
	if !ok || o.X != 20 {
		t.Fatalf("fresh handle should resolve, got %+v ok=%v", o, ok)
	}
}

func TestSparseSetSwapRemoveKeepsValues(t *testing.T) {
	var s SparseSet[int]
	for id := 1; id <= 5; id++ {
		s.Set(id, id*10)
	}
	if !s.Remove(2) {
		t.Fatalf("remove existing id failed")
	}
	if s.Remove(2) {
		t.Fatalf("remove missing id should report false")
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 values, got %d", s.Len())
	}
	for _, id := range []int{1, 3, 4, 5} {
		v := s.Get(id)
		if v == nil || *v != id*10 {
			t.Fatalf("id %d: got %v", id, v)
		}
	}
	s.Set(3, 99)
	if *s.Get(3) != 99 {
		t.Fatalf("update in place failed")
	}
	s.Clear()
	if s.Len() != 0 || s.Has(1) {
		t.Fatalf("clear left values behind")
	}
}

func TestGroupAnchorLifecycle(t *testing.T) {
	w := NewWorld(420, 720)
	g := w.NewGroup()
	wall := w.AddBand(component.Band{Width: 100, Group: g, Kind: component.BandNeutral})
	anchor := w.AddBand(component.Band{X: 60, Width: 60, Group: g, Anchor: true})

	b, ok := w.Anchor(g)
	if !ok || b.X != 60 {
		t.Fatalf("anchor lookup = %+v ok=%v", b, ok)
	}

	w.DestroyBand(wall)
	if _, ok := w.Anchor(g); !ok {
		t.Fatalf("destroying a non-anchor member must keep the group")
	}

	w.DestroyBand(anchor)
	if _, ok := w.Anchor(g); ok {
		t.Fatalf("group should dissolve with its anchor")
	}
	if w.GroupCount() != 0 {
		t.Fatalf("expected no groups, got %d", w.GroupCount())
	}
}

func TestClearKeepsBest(t *testing.T) {
	w := NewWorld(420, 720)
	w.AddBand(component.Band{Width: 420})
	w.AddOrb(component.Orb{})
	w.Run().Score = 40
	w.Run().Best = 120
	w.Events().Push(Event{Kind: EventPickup})

	w.Clear()

	if w.BandCount() != 0 || w.OrbCount() != 0 {
		t.Fatalf("clear left entities: bands=%d orbs=%d", w.BandCount(), w.OrbCount())
	}
	if w.Run().Score != 0 || w.Run().Best != 120 {
		t.Fatalf("run after clear = %+v", *w.Run())
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events should be dropped on clear")
	}
}

func TestForEachVisitsAll(t *testing.T) {
	w := NewWorld(420, 720)
	want := map[Entity]struct{}{}
	for i := 0; i < 4; i++ {
		want[w.AddOrb(component.Orb{Y: float64(i)})] = struct{}{}
	}
	got := map[Entity]struct{}{}
	w.ForEachOrb(func(e Entity, o *component.Orb) {
		got[e] = struct{}{}
		o.Y += 100
	})
	if len(got) != len(want) {
		t.Fatalf("visited %d of %d", len(got), len(want))
	}
	for e := range want {
		o, _ := w.Orb(e)
		if o.Y < 100 {
			t.Fatalf("mutation through ForEachOrb lost for %v", e)
		}
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrderSkipsNil(t *testing.T) {
	var got []string
	s := NewScheduler(
		recordSystem{"scroll", &got},
		nil,
		recordSystem{"spawn", &got},
		recordSystem{"score", &got},
	)
	s.Update(NewWorld(420, 720))
	s.Update(NewWorld(420, 720))

	want := []string{"scroll", "spawn", "score", "scroll", "spawn", "score"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ran %v, want %v", got, want)
		}
	}
}
