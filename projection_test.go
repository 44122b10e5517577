package wordarena

import (
	"testing"
	"time"
)

func TestProjectBubbles(t *testing.T) {
	a, world := newTestArena(t, nil)
	ws := mustAdd(t, a, "cat", "dog")
	f := a.Project(t0)

	if f.Count != 2 || f.Max != a.Config().MaxWords || f.Locked {
		t.Errorf("Count = %d, Max = %d, Locked = %v", f.Count, f.Max, f.Locked)
	}
	if len(f.Bubbles) != 2 || len(f.Walls) != 40 {
		t.Fatalf("bubbles = %d, walls = %d", len(f.Bubbles), len(f.Walls))
	}
	b := f.Bubbles[1]
	body := world.bodies[ws[1].ID]
	if b.ID != ws[1].ID || b.Text != "dog" || b.Center != body.Position {
		t.Errorf("bubble = %+v, body = %+v", b, body)
	}
	assertNear(t, "Bounds.X", b.Bounds.X, body.Position.X-body.Radius)
	assertNear(t, "Bounds.Width", b.Bounds.Width, 2*body.Radius)
	if b.Pressed || b.Fill != a.Config().NeutralColor {
		t.Errorf("idle bubble pressed=%v fill=%v", b.Pressed, b.Fill)
	}
}

func TestProjectPressRamp(t *testing.T) {
	a, _ := newTestArena(t, nil)
	ws := mustAdd(t, a, "cat")
	a.PointerDown(ws[0].ID, t0)
	cfg := a.Config()

	tests := []struct {
		after time.Duration
		want  float64
	}{
		{0, 0},
		{250 * time.Millisecond, 0.25},
		{500 * time.Millisecond, 0.5},
		{2 * time.Second, 1},
	}
	for _, tt := range tests {
		b := a.Project(t0.Add(tt.after)).Bubbles[0]
		if !b.Pressed {
			t.Fatal("bubble should be pressed")
		}
		assertNear(t, "Progress", b.Progress, tt.want)
		want := LerpColor(cfg.NeutralColor, cfg.AlertColor, tt.want)
		assertNear(t, "Fill.G", b.Fill.G, want.G)
		assertNear(t, "Fill.R", b.Fill.R, want.R)
	}
}

func TestProjectEffects(t *testing.T) {
	a, _ := newTestArena(t, nil)
	ws := mustAdd(t, a, "cat")
	a.PointerDown(ws[0].ID, t0)
	a.PointerUp(ws[0].ID, t0)

	f := a.Project(t0)
	if len(f.Bubbles) != 0 {
		t.Errorf("bubbles = %d, want 0", len(f.Bubbles))
	}
	if len(f.Particles) != a.Config().BurstCount {
		t.Errorf("particles = %d, want %d", len(f.Particles), a.Config().BurstCount)
	}
	if len(f.Pops) != 1 || f.Pops[0].Text != "cat" {
		t.Errorf("pops = %+v", f.Pops)
	}
}

func TestHitTestTopmost(t *testing.T) {
	f := Frame{Bubbles: []BubbleView{
		{ID: 1, Center: Vec2{100, 100}, Radius: 32},
		{ID: 2, Center: Vec2{120, 100}, Radius: 32},
	}}
	tests := []struct {
		name   string
		x, y   float64
		wantID WordID
		wantOK bool
	}{
		{"overlap picks last", 110, 100, 2, true},
		{"only first", 70, 100, 1, true},
		{"edge", 152, 100, 2, true},
		{"miss", 300, 300, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := f.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || b.ID != tt.wantID {
				t.Errorf("HitTest = %d, %v; want %d, %v", b.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
