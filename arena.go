package wordarena

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// RemoveEvent describes one bubble leaving the arena.
type RemoveEvent struct {
	Word     Word
	Position Vec2
	// Batch is true when the removal is part of a same-word long press.
	Batch bool
}

type removeHandler struct {
	id uint32
	fn func(RemoveEvent)
}

// Arena is the single owner of the toy's state: the word registry, the
// physics world, press state, the lock flag, scheduled effects, particles
// and pop animations. All methods must be called from one goroutine, which
// in the ebiten host is the Update loop.
type Arena struct {
	cfg Config
	log zerolog.Logger
	rng *rand.Rand

	registry  *Registry
	world     World
	sync      *Synchronizer
	walls     []Wall
	sched     Scheduler
	particles *ParticleTracker
	pops      popSet

	presses    map[WordID]*press
	pressOrder []WordID
	locked     bool
	unlockAt   time.Time

	lastTick      time.Time
	onRemove      []removeHandler
	nextHandlerID uint32
}

// NewArena validates cfg and builds an arena backed by a Chipmunk2D world.
func NewArena(cfg Config) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	world := NewPhysicsWorld(PhysicsConfig{
		BubbleRadius: cfg.BubbleRadius,
		Restitution:  cfg.Restitution,
		Damping:      cfg.Damping(),
		Gravity:      cfg.Gravity,
	})
	return NewArenaWithWorld(cfg, world), nil
}

// NewArenaWithWorld builds an arena on an existing physics world. The walls
// are added to world here, once. cfg is assumed valid.
func NewArenaWithWorld(cfg Config, world World) *Arena {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	a := &Arena{
		cfg:      cfg,
		log:      zerolog.Nop(),
		rng:      rng,
		registry: NewRegistry(cfg.MaxWords, cfg.MaxWordRunes),
		world:    world,
		sync:     NewSynchronizer(cfg, rng),
		particles: NewParticleTracker(BurstConfig{
			Distance: cfg.BurstDistance,
			Jitter:   cfg.BurstJitter,
			Size:     cfg.ParticleSize,
			Color:    cfg.ParticleColor,
		}, rng),
		presses: make(map[WordID]*press),
	}
	a.walls = BuildWalls(cfg.Center(), cfg.ArenaRadius, cfg.WallCount, cfg.WallThickness, cfg.WallLength)
	for _, w := range a.walls {
		world.AddWall(w)
	}
	return a
}

// SetLogger replaces the arena's logger. The default discards everything.
func (a *Arena) SetLogger(l zerolog.Logger) {
	a.log = l
}

// Config returns the arena's configuration.
func (a *Arena) Config() Config { return a.cfg }

// Walls returns the boundary segments. The returned slice MUST NOT be mutated.
func (a *Arena) Walls() []Wall { return a.walls }

// Words returns the registry entries in insertion order.
func (a *Arena) Words() []Word { return a.registry.Words() }

// Texts returns the registry texts in insertion order.
func (a *Arena) Texts() []string { return a.registry.Texts() }

// Len returns the number of registered words.
func (a *Arena) Len() int { return a.registry.Len() }

// Full reports whether the registry is at capacity.
func (a *Arena) Full() bool { return a.registry.Full() }

// Locked reports whether a batch removal is in progress.
func (a *Arena) Locked() bool { return a.locked }

// UnlockAt returns when the current lock clears. ok is false when unlocked.
func (a *Arena) UnlockAt() (at time.Time, ok bool) {
	if !a.locked {
		return time.Time{}, false
	}
	return a.unlockAt, true
}

// Bodies returns the current word bodies.
func (a *Arena) Bodies() []BodyState { return a.world.Bubbles() }

// ParticleCount returns the number of live particles.
func (a *Arena) ParticleCount() int { return a.particles.AliveCount() }

// PendingTimers returns the number of scheduled effects.
func (a *Arena) PendingTimers() int { return a.sched.Pending() }

// CaptureRegion returns the stage bounds in stage coordinates: the region an
// image export should contain.
func (a *Arena) CaptureRegion() Rect {
	return Rect{Width: a.cfg.StageSize, Height: a.cfg.StageSize}
}

// OnRemove registers a callback fired once per removed bubble, at the moment
// its burst is spawned. The returned function unregisters it.
func (a *Arena) OnRemove(fn func(RemoveEvent)) (remove func()) {
	a.nextHandlerID++
	id := a.nextHandlerID
	a.onRemove = append(a.onRemove, removeHandler{id: id, fn: fn})
	return func() {
		for i := range a.onRemove {
			if a.onRemove[i].id == id {
				a.onRemove = append(a.onRemove[:i], a.onRemove[i+1:]...)
				return
			}
		}
	}
}

// Add registers text as a new bubble. It is a silent no-op, reporting false,
// while the arena is locked, when the registry is full or when text is empty
// after trimming.
func (a *Arena) Add(text string) (Word, bool) {
	if a.locked {
		a.log.Debug().Str("text", text).Msg("add ignored: locked")
		return Word{}, false
	}
	w, ok := a.registry.Add(text)
	if !ok {
		a.log.Debug().Str("text", text).Int("count", a.registry.Len()).Msg("add ignored")
		return Word{}, false
	}
	a.synchronize()
	a.log.Debug().Uint64("id", uint64(w.ID)).Str("text", w.Text).Msg("word added")
	return w, true
}

// Update advances the arena to now: one fixed physics step, press progress,
// due scheduled effects, particle expiry and pop animations.
func (a *Arena) Update(now time.Time) {
	var dt float32
	if !a.lastTick.IsZero() {
		dt = float32(now.Sub(a.lastTick).Seconds())
	}
	a.lastTick = now

	a.world.Step(a.cfg.Timestep)
	a.updatePresses(now)
	a.sched.Run(now)
	a.particles.Sweep(now)
	a.pops.update(dt)
}

// synchronize reconciles the world with the registry and drops presses on
// bubbles that no longer exist.
func (a *Arena) synchronize() {
	added, removed := a.sync.Sync(a.registry.Words(), a.world)
	for _, id := range slices.Clone(a.pressOrder) {
		if _, ok := a.registry.Get(id); !ok {
			a.dropPress(id)
		}
	}
	a.log.Trace().Int("added", added).Int("removed", removed).Msg("bodies synchronized")
}

// position returns the last known position of the body for id, or the
// arena center when it has none.
func (a *Arena) position(id WordID) Vec2 {
	if b, ok := a.world.Bubble(id); ok {
		return b.Position
	}
	return a.cfg.Center()
}

// burst spawns the particle burst and pop for one removed word.
func (a *Arena) burst(w Word, pos Vec2, batch bool, now time.Time) {
	a.particles.SpawnBurst(pos.X, pos.Y, a.cfg.BurstCount, a.cfg.BurstDuration, now)
	a.pops.add(newPop(w.Text, pos, a.cfg.PopDuration, a.rng))
	ev := RemoveEvent{Word: w, Position: pos, Batch: batch}
	for _, h := range a.onRemove {
		h.fn(ev)
	}
}
