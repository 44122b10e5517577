package wordarena

import (
	"testing"
	"time"
)

func injectFrame(in *Input, now time.Time) bool {
	return in.processInjectedInput(in.arena.Project(now), now)
}

func TestInjectClickQueue(t *testing.T) {
	in, a, w := newTestInput(t, func(c *Config) { c.Interaction = InteractionClick })
	ws := mustAdd(t, a, "cat")
	place(w, ws[0].ID, Vec2{300, 300})

	in.InjectClick(at(Vec2{300, 300}))
	if in.PendingInjections() != 2 {
		t.Fatalf("queued = %d, want 2", in.PendingInjections())
	}
	injectFrame(in, t0)
	if a.Len() != 1 {
		t.Error("click should not fire on the press frame")
	}
	injectFrame(in, t0)
	if a.Len() != 0 || in.PendingInjections() != 0 {
		t.Errorf("Len = %d, pending = %d", a.Len(), in.PendingInjections())
	}
	if injectFrame(in, t0) {
		t.Error("empty queue reported an event")
	}
}

func TestInjectHold(t *testing.T) {
	in, a, w := newTestInput(t, nil)
	ws := mustAdd(t, a, "cat", "cat")
	place(w, ws[0].ID, Vec2{200, 300})
	place(w, ws[1].ID, Vec2{400, 300})

	in.InjectHold(200, 396, 70)
	if in.PendingInjections() != 70 {
		t.Fatalf("queued = %d, want 70", in.PendingInjections())
	}
	now := t0
	for in.PendingInjections() > 0 {
		injectFrame(in, now)
		a.Update(now)
		now = now.Add(16 * time.Millisecond)
	}
	// 69 frames of 16ms pass the 1s threshold: every "cat" goes.
	if a.Len() != 0 || !a.Locked() {
		t.Errorf("Len = %d, Locked = %v", a.Len(), a.Locked())
	}
}

func TestInjectHoldMinimumFrames(t *testing.T) {
	in, _, _ := newTestInput(t, nil)
	in.InjectHold(0, 0, 0)
	if in.PendingInjections() != 2 {
		t.Errorf("queued = %d, want 2", in.PendingInjections())
	}
}

func TestInjectShortHold(t *testing.T) {
	in, a, w := newTestInput(t, nil)
	ws := mustAdd(t, a, "cat", "cat")
	place(w, ws[0].ID, Vec2{200, 300})
	place(w, ws[1].ID, Vec2{400, 300})

	in.InjectHold(200, 396, 5)
	now := t0
	for in.PendingInjections() > 0 {
		injectFrame(in, now)
		a.Update(now)
		now = now.Add(16 * time.Millisecond)
	}
	if a.Len() != 1 || a.Locked() {
		t.Errorf("Len = %d, Locked = %v", a.Len(), a.Locked())
	}
}
