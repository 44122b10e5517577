package wordarena

import (
	"math"
	"testing"
	"time"
)

func TestPopRunsToCompletion(t *testing.T) {
	p := newPop("cat", Vec2{10, 20}, 350*time.Millisecond, testRNG())
	if math.Abs(p.rotation) > popMaxTilt {
		t.Errorf("rotation %v exceeds tilt", p.rotation)
	}

	p.update(0.2)
	if p.done {
		t.Fatal("done too early")
	}
	if p.scale <= 1 || p.alpha >= 1 {
		t.Errorf("mid pop scale = %v, alpha = %v", p.scale, p.alpha)
	}

	p.update(0.2)
	if !p.done {
		t.Fatal("not done after duration")
	}
	if math.Abs(p.scale-popEndScale) > 1e-4 {
		t.Errorf("final scale = %v, want %v", p.scale, popEndScale)
	}
	assertNear(t, "alpha", p.alpha, 0)
}

func TestPopSetDropsFinished(t *testing.T) {
	var s popSet
	s.add(newPop("a", Vec2{}, 100*time.Millisecond, testRNG()))
	s.add(newPop("b", Vec2{}, 500*time.Millisecond, testRNG()))

	s.update(0.2)
	views := s.views(32, nil)
	if len(views) != 1 || views[0].Text != "b" {
		t.Fatalf("views = %+v", views)
	}
	if views[0].Radius != 32 {
		t.Errorf("Radius = %v, want 32", views[0].Radius)
	}
	s.update(0.4)
	if len(s.pops) != 0 {
		t.Errorf("pops = %d, want 0", len(s.pops))
	}
}
