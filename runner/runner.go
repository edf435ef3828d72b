// Package runner drives one phase runner session: it owns the world, the
// obstacle spawner and the per-frame systems, and serializes input and frame
// steps behind a mutex so front-ends may call it from any goroutine.
package runner

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/component"
	"github.com/milk9111/phaserunner/ecs/entity"
	"github.com/milk9111/phaserunner/ecs/system"
	"github.com/milk9111/phaserunner/prefabs"
)

type State int

const (
	StateReady State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// BestStore persists the best score between sessions.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// Spawner fills the corridor ahead of the player.
type Spawner interface {
	system.Spawner
	Reset(w *ecs.World)
}

type debugger interface {
	Debug() entity.Debug
}

// Result describes a finished run.
type Result struct {
	Score   int
	Best    int
	NewBest bool
}

type Option func(*Runner)

// WithSpawner replaces the catalog spawner, mostly for tests.
func WithSpawner(sp Spawner) Option {
	return func(r *Runner) { r.spawner = sp }
}

func WithBestStore(store BestStore) Option {
	return func(r *Runner) { r.store = store }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSource sets the random source for the catalog spawner.
func WithSource(src common.Source) Option {
	return func(r *Runner) { r.src = src }
}

// WithDebug logs spawner interventions.
func WithDebug(on bool) Option {
	return func(r *Runner) { r.debug = on }
}

type Runner struct {
	mu sync.Mutex

	tuning  prefabs.Tuning
	pending *prefabs.Tuning

	world     *ecs.World
	scheduler *ecs.Scheduler
	spawner   Spawner
	custom    bool
	src       common.Source
	store     BestStore
	log       *log.Logger
	debug     bool

	state   State
	last    time.Duration
	hasLast bool

	onGameOver func(Result)
}

// New creates a runner in the ready state. The best score is read from the
// store once; a failing store is logged and treated as zero.
func New(t prefabs.Tuning, opts ...Option) (*Runner, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("runner: new: %w", err)
	}
	r := &Runner{
		tuning: t,
		log:    log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.custom = r.spawner != nil
	if r.src == nil {
		r.src = common.NewSource(0)
	}

	r.world = ecs.NewWorld(t.Corridor.Width, t.Corridor.Height)
	r.configure()

	if r.store != nil {
		best, err := r.store.LoadBest()
		if err != nil {
			r.log.Printf("runner: load best score: %v", err)
		} else {
			r.world.Run().Best = best
		}
	}
	return r, nil
}

// configure rebuilds the spawner and systems from the current tuning.
func (r *Runner) configure() {
	t := r.tuning
	r.world.SetSize(t.Corridor.Width, t.Corridor.Height)
	if !r.custom {
		r.spawner = entity.NewSpawner(spawnRules(t.Spawn), r.src)
	}
	r.scheduler = ecs.NewScheduler(
		system.NewScrollSystem(),
		system.NewSpawnSystem(r.spawner),
		system.NewScoreSystem(t.Scoring.MsPerPoint, t.Speed.AccelPerMs, t.Speed.Cap),
		system.NewCooldownSystem(),
		system.NewHazardSystem(),
		system.NewPickupCollectSystem(t.Scoring.OrbValue),
		system.NewCullSystem(t.Frame.CullMargin),
	)
}

func spawnRules(s prefabs.SpawnSpec) entity.Rules {
	return entity.Rules{
		UnlockScore:    s.UnlockScore,
		MinBase:        s.MinBase,
		ForceBase:      s.ForceBase,
		SpecialChance:  s.SpecialChance,
		TargetFraction: s.TargetFraction,
		SafetyCap:      s.SafetyCap,
		StreakLimit:    s.StreakLimit,
		StartTopY:      s.StartTopY,
	}
}

// OnGameOver registers fn to be called once per finished run. It is called
// without the runner lock held, so fn may call back into the runner.
func (r *Runner) OnGameOver(fn func(Result)) {
	r.mu.Lock()
	r.onGameOver = fn
	r.mu.Unlock()
}

// SetTuning stages t for the next Start or Restart.
func (r *Runner) SetTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("runner: set tuning: %w", err)
	}
	r.mu.Lock()
	r.pending = &t
	r.mu.Unlock()
	return nil
}

func (r *Runner) Tuning() prefabs.Tuning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tuning
}

// Start begins a fresh run from any state.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startLocked()
}

// Restart is Start; it exists so a terminated run reads naturally at call
// sites.
func (r *Runner) Restart() {
	r.Start()
}

func (r *Runner) startLocked() {
	if r.pending != nil {
		r.tuning = *r.pending
		r.pending = nil
		r.configure()
	}
	t := r.tuning

	r.world.Clear()
	p := r.world.Player()
	*p = component.Player{
		X:     t.Corridor.Width / 2,
		Y:     t.Corridor.Height * t.Player.YFraction,
		R:     t.Player.Radius,
		Phase: component.PhaseSolid,
	}
	r.world.Run().Speed = t.Speed.Start
	r.spawner.Reset(r.world)

	r.state = StateRunning
	r.hasLast = false
}

// Step advances the run to now, a monotonic timestamp. The first step after
// Start only establishes the time base. Frame time is clamped to
// frame.max_dt_ms. Events raised during the step are returned.
func (r *Runner) Step(now time.Duration) []ecs.Event {
	r.mu.Lock()
	events, over, fn := r.stepLocked(now)
	r.mu.Unlock()

	if over != nil && fn != nil {
		fn(*over)
	}
	return events
}

func (r *Runner) stepLocked(now time.Duration) ([]ecs.Event, *Result, func(Result)) {
	if r.state != StateRunning {
		return nil, nil, nil
	}

	dt := 0.0
	if r.hasLast {
		dt = float64(now-r.last) / float64(time.Millisecond)
	}
	r.last = now
	r.hasLast = true
	dt = common.Clamp(dt, 0, r.tuning.Frame.MaxDTMs)

	r.world.SetDT(dt)
	r.scheduler.Update(r.world)
	events := r.world.Events().Drain()

	if r.debug {
		for _, evt := range events {
			switch evt.Kind {
			case ecs.EventPhaseLock:
				r.log.Printf("runner: phase guard forced %s after streak of %d", evt.Phase.Opposite(), evt.Value)
			case ecs.EventSpawnLimit:
				r.log.Printf("runner: spawn safety cap hit after %d chunks", evt.Value)
			}
		}
	}

	if !r.world.Run().Dead {
		return events, nil, nil
	}
	res := r.terminateLocked()
	return events, &res, r.onGameOver
}

func (r *Runner) terminateLocked() Result {
	run := r.world.Run()
	r.state = StateTerminated

	res := Result{Score: run.Score, Best: run.Best}
	if run.Score > run.Best {
		run.Best = run.Score
		res.Best = run.Score
		res.NewBest = true
		if r.store != nil {
			if err := r.store.SaveBest(run.Best); err != nil {
				r.log.Printf("runner: save best score %d: %v", run.Best, err)
			}
		}
	}
	return res
}

// SetPlayerX moves the player, clamped inside the corridor walls. It is
// ignored unless a run is in progress.
func (r *Runner) SetPlayerX(x float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setPlayerXLocked(x)
}

// NudgePlayerX moves the player by dx, with the same clamping as SetPlayerX.
func (r *Runner) NudgePlayerX(dx float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setPlayerXLocked(r.world.Player().X + dx)
}

func (r *Runner) setPlayerXLocked(x float64) {
	if r.state != StateRunning {
		return
	}
	p := r.world.Player()
	margin := p.R + r.tuning.Player.EdgeMargin
	p.X = common.Clamp(x, margin, r.world.Width()-margin)
}

// TogglePhaseIfAllowed flips the player's phase when the run is in progress
// and the cooldown has elapsed. It reports whether the phase changed.
func (r *Runner) TogglePhaseIfAllowed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRunning {
		return false
	}
	p := r.world.Player()
	if p.Cooldown > 0 {
		return false
	}
	p.Phase = p.Phase.Opposite()
	p.Cooldown = r.tuning.Player.PhaseCooldownMs
	return true
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) IsTerminated() bool {
	return r.State() == StateTerminated
}

// Best returns the best score known to this runner.
func (r *Runner) Best() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.Run().Best
}
