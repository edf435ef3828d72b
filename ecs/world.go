package ecs

import "github.com/milk9111/phaserunner/ecs/component"

// World owns the live corridor: bands, orbs, motion groups, the player and
// the per-run counters. It is not safe for concurrent use; the runner
// serializes access.
type World struct {
	entities entityStore
	events   EventQueue

	bands  SparseSet[component.Band]
	orbs   SparseSet[component.Orb]
	groups map[component.GroupID]component.Group

	nextGroup component.GroupID

	player component.Player
	run    component.Run

	width  float64
	height float64
	dt     float64
}

// NewWorld creates an empty world for a corridor of the given size.
func NewWorld(width, height float64) *World {
	return &World{
		width:  width,
		height: height,
		groups: make(map[component.GroupID]component.Group),
	}
}

// Width returns the corridor width.
func (w *World) Width() float64 { return w.width }

// Height returns the viewport height.
func (w *World) Height() float64 { return w.height }

// SetSize changes the corridor dimensions. Existing entities keep their
// positions.
func (w *World) SetSize(width, height float64) {
	w.width = width
	w.height = height
}

// DT returns the clamped frame time in milliseconds.
func (w *World) DT() float64 { return w.dt }

func (w *World) SetDT(ms float64) { w.dt = ms }

func (w *World) Player() *component.Player { return &w.player }

func (w *World) Run() *component.Run { return &w.run }

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// NewGroup allocates a motion group id.
func (w *World) NewGroup() component.GroupID {
	w.nextGroup++
	return w.nextGroup
}

// AddBand stores a band. A band flagged as Anchor becomes the tracked band of
// its group.
func (w *World) AddBand(b component.Band) Entity {
	e := w.entities.create()
	w.bands.Set(e.ID, b)
	if b.Group != 0 && b.Anchor {
		w.groups[b.Group] = component.Group{Anchor: e.ID}
	}
	return e
}

// AddOrb stores an orb.
func (w *World) AddOrb(o component.Orb) Entity {
	e := w.entities.create()
	w.orbs.Set(e.ID, o)
	return e
}

// Band returns the band for e, if alive.
func (w *World) Band(e Entity) (*component.Band, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	b := w.bands.Get(e.ID)
	return b, b != nil
}

// Orb returns the orb for e, if alive.
func (w *World) Orb(e Entity) (*component.Orb, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	o := w.orbs.Get(e.ID)
	return o, o != nil
}

// DestroyBand removes a band. Destroying a group's anchor dissolves the
// group; followers keep their last position.
func (w *World) DestroyBand(e Entity) bool {
	b, ok := w.Band(e)
	if !ok {
		return false
	}
	if b.Group != 0 {
		if g, ok := w.groups[b.Group]; ok && g.Anchor == e.ID {
			delete(w.groups, b.Group)
		}
	}
	w.bands.Remove(e.ID)
	return w.entities.destroy(e)
}

// DestroyOrb removes an orb.
func (w *World) DestroyOrb(e Entity) bool {
	if _, ok := w.Orb(e); !ok {
		return false
	}
	w.orbs.Remove(e.ID)
	return w.entities.destroy(e)
}

// Anchor returns the band a group's followers track.
func (w *World) Anchor(id component.GroupID) (*component.Band, bool) {
	g, ok := w.groups[id]
	if !ok {
		return nil, false
	}
	b := w.bands.Get(g.Anchor)
	return b, b != nil
}

// ForEachBand visits every band. fn must not add or destroy entities.
func (w *World) ForEachBand(fn func(e Entity, b *component.Band)) {
	ids := w.bands.Entities()
	values := w.bands.Values()
	for i := range values {
		fn(w.entities.handle(ids[i]), &values[i])
	}
}

// ForEachOrb visits every orb. fn must not add or destroy entities.
func (w *World) ForEachOrb(fn func(e Entity, o *component.Orb)) {
	ids := w.orbs.Entities()
	values := w.orbs.Values()
	for i := range values {
		fn(w.entities.handle(ids[i]), &values[i])
	}
}

func (w *World) BandCount() int { return w.bands.Len() }

func (w *World) OrbCount() int { return w.orbs.Len() }

func (w *World) GroupCount() int { return len(w.groups) }

// Bands returns a copy of every band.
func (w *World) Bands() []component.Band {
	return append([]component.Band(nil), w.bands.Values()...)
}

// Orbs returns a copy of every orb.
func (w *World) Orbs() []component.Orb {
	return append([]component.Orb(nil), w.orbs.Values()...)
}

// Clear drops every band, orb and group and resets the run counters. Best
// score survives.
func (w *World) Clear() {
	w.bands.Clear()
	w.orbs.Clear()
	clear(w.groups)
	w.entities.reset()
	w.events.Drain()
	w.nextGroup = 0
	w.dt = 0
	w.run = component.Run{Best: w.run.Best}
}
