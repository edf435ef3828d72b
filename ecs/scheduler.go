package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler runs a fixed list of systems in registration order.
type Scheduler struct {
	systems []System
}

// NewScheduler drops nil systems; the order of the rest is the step order.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}
