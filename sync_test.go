package wordarena

import "testing"

// fakeWorld is a World without dynamics: bodies stay where they are put.
type fakeWorld struct {
	walls  []Wall
	bodies map[WordID]BodyState
	order  []WordID
	steps  int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{bodies: make(map[WordID]BodyState)}
}

func (w *fakeWorld) AddWall(wall Wall) { w.walls = append(w.walls, wall) }

func (w *fakeWorld) AddBubble(word Word, pos, vel Vec2) {
	w.RemoveBubble(word.ID)
	w.bodies[word.ID] = BodyState{ID: word.ID, Text: word.Text, Position: pos, Velocity: vel, Radius: 32}
	w.order = append(w.order, word.ID)
}

func (w *fakeWorld) RemoveBubble(id WordID) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

func (w *fakeWorld) Bubble(id WordID) (BodyState, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

func (w *fakeWorld) Bubbles() []BodyState {
	out := make([]BodyState, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

func (w *fakeWorld) Step(float64) { w.steps++ }

// assertBodiesMatch checks that world holds exactly one body per word with
// the same text.
func assertBodiesMatch(t *testing.T, words []Word, world World) {
	t.Helper()
	bodies := world.Bubbles()
	if len(bodies) != len(words) {
		t.Fatalf("bodies = %d, words = %d", len(bodies), len(words))
	}
	for _, w := range words {
		b, ok := world.Bubble(w.ID)
		if !ok {
			t.Fatalf("word %d (%q) has no body", w.ID, w.Text)
		}
		if b.Text != w.Text {
			t.Errorf("body %d text = %q, want %q", w.ID, b.Text, w.Text)
		}
	}
}

func TestSyncIncrementalKeepsSurvivors(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSynchronizer(cfg, testRNG())
	world := newFakeWorld()
	words := []Word{{1, "cat"}, {2, "dog"}, {3, "cat"}}

	added, removed := s.Sync(words, world)
	if added != 3 || removed != 0 {
		t.Fatalf("first sync = %d/%d, want 3/0", added, removed)
	}
	before, _ := world.Bubble(3)

	words = []Word{{1, "cat"}, {3, "cat"}, {4, "eel"}}
	added, removed = s.Sync(words, world)
	if added != 1 || removed != 1 {
		t.Errorf("second sync = %d/%d, want 1/1", added, removed)
	}
	after, _ := world.Bubble(3)
	if after.Position != before.Position {
		t.Errorf("survivor moved from %v to %v", before.Position, after.Position)
	}
	assertBodiesMatch(t, words, world)
}

func TestSyncRebuildRespawnsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync = SyncRebuild
	s := NewSynchronizer(cfg, testRNG())
	world := newFakeWorld()

	s.Sync([]Word{{1, "cat"}, {2, "dog"}}, world)
	words := []Word{{1, "cat"}}
	added, removed := s.Sync(words, world)
	if added != 1 || removed != 2 {
		t.Errorf("rebuild = %d/%d, want 1/2", added, removed)
	}
	assertBodiesMatch(t, words, world)
}

func TestSyncSpawnsInsideDisc(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSynchronizer(cfg, testRNG())
	world := newFakeWorld()
	var words []Word
	for i := range 100 {
		words = append(words, Word{ID: WordID(i + 1), Text: "w"})
	}
	s.Sync(words, world)
	r := cfg.ArenaRadius - cfg.SpawnInset
	for _, b := range world.Bubbles() {
		if d := b.Position.Sub(cfg.Center()).LenSq(); d > r*r+epsilon {
			t.Fatalf("body %d spawned outside disc: %v", b.ID, b.Position)
		}
	}
}

func TestSyncEmpty(t *testing.T) {
	s := NewSynchronizer(DefaultConfig(), testRNG())
	world := newFakeWorld()
	s.Sync([]Word{{1, "cat"}}, world)
	if _, removed := s.Sync(nil, world); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(world.Bubbles()) != 0 {
		t.Error("world should be empty")
	}
}
