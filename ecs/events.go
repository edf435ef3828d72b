package ecs

import "github.com/milk9111/phaserunner/ecs/component"

// EventKind identifies gameplay events emitted during a frame.
type EventKind string

const (
	EventDeath      EventKind = "death"
	EventPickup     EventKind = "pickup"
	EventPhaseLock  EventKind = "phase_lock"
	EventSpecial    EventKind = "special"
	EventSpawnLimit EventKind = "spawn_limit"
)

// Event is a gameplay notification for front-ends (sound, debug overlay).
type Event struct {
	Kind  EventKind
	Phase component.Phase
	Value int
	Note  string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
