package wordarena

import "math/rand/v2"

// Synchronizer reconciles the registry with the physics world. New bodies
// spawn at a uniform point inside the spawn disc with a small random velocity.
type Synchronizer struct {
	Mode        SyncMode
	Center      Vec2
	SpawnRadius float64
	MaxSpeed    float64
	rng         *rand.Rand
}

// NewSynchronizer builds a synchronizer from cfg. rng may be nil.
func NewSynchronizer(cfg Config, rng *rand.Rand) *Synchronizer {
	return &Synchronizer{
		Mode:        cfg.Sync,
		Center:      cfg.Center(),
		SpawnRadius: cfg.ArenaRadius - cfg.SpawnInset,
		MaxSpeed:    cfg.MaxInitialSpeed,
		rng:         rng,
	}
}

// Sync makes the set of word bodies in world match words exactly. It returns
// the number of bodies added and removed.
func (s *Synchronizer) Sync(words []Word, world World) (added, removed int) {
	if s.Mode == SyncRebuild {
		return s.rebuild(words, world)
	}
	return s.diff(words, world)
}

// rebuild drops every word body and respawns one per word. Motion of
// unrelated bubbles is lost.
func (s *Synchronizer) rebuild(words []Word, world World) (added, removed int) {
	for _, b := range world.Bubbles() {
		if world.RemoveBubble(b.ID) {
			removed++
		}
	}
	for _, w := range words {
		s.spawn(w, world)
		added++
	}
	return added, removed
}

// diff removes orphaned bodies and spawns missing ones, leaving the rest in
// motion.
func (s *Synchronizer) diff(words []Word, world World) (added, removed int) {
	want := make(map[WordID]struct{}, len(words))
	for _, w := range words {
		want[w.ID] = struct{}{}
	}
	for _, b := range world.Bubbles() {
		if _, ok := want[b.ID]; !ok && world.RemoveBubble(b.ID) {
			removed++
		}
	}
	for _, w := range words {
		if _, ok := world.Bubble(w.ID); ok {
			continue
		}
		s.spawn(w, world)
		added++
	}
	return added, removed
}

func (s *Synchronizer) spawn(w Word, world World) {
	pos := RandomPointInDisc(s.rng, s.Center, s.SpawnRadius)
	vel := RandomVelocity(s.rng, s.MaxSpeed)
	world.AddBubble(w, pos, vel)
}
