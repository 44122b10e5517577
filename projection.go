package wordarena

import "time"

// BubbleView is one word body mapped to what the host draws: a disc with a
// label.
type BubbleView struct {
	ID     WordID
	Text   string
	Center Vec2
	Radius float64
	// Bounds is Center ± Radius.
	Bounds   Rect
	Fill     Color
	Progress float64
	Pressed  bool
}

// Contains reports whether (x, y) lies inside or on the bubble's disc.
func (b BubbleView) Contains(x, y float64) bool {
	dx := x - b.Center.X
	dy := y - b.Center.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Frame is everything the host needs to draw the arena at one instant, in
// stage coordinates.
type Frame struct {
	Bubbles   []BubbleView
	Particles []ParticleView
	Pops      []PopView
	Walls     []Wall
	Count     int
	Max       int
	Locked    bool
}

// Project derives the frame at now. It owns no state and can be called any
// number of times between updates.
func (a *Arena) Project(now time.Time) Frame {
	bodies := a.world.Bubbles()
	f := Frame{
		Bubbles: make([]BubbleView, 0, len(bodies)),
		Walls:   a.walls,
		Count:   a.registry.Len(),
		Max:     a.registry.Cap(),
		Locked:  a.locked,
	}
	for _, b := range bodies {
		v := BubbleView{
			ID:     b.ID,
			Text:   b.Text,
			Center: b.Position,
			Radius: b.Radius,
			Bounds: Rect{
				X:      b.Position.X - b.Radius,
				Y:      b.Position.Y - b.Radius,
				Width:  2 * b.Radius,
				Height: 2 * b.Radius,
			},
			Fill: a.cfg.NeutralColor,
		}
		if p, ok := a.presses[b.ID]; ok {
			v.Pressed = true
			v.Progress = a.progressAt(p, now)
			v.Fill = LerpColor(a.cfg.NeutralColor, a.cfg.AlertColor, v.Progress)
		}
		f.Bubbles = append(f.Bubbles, v)
	}
	f.Particles = a.particles.Views(now, nil)
	f.Pops = a.pops.views(a.cfg.BubbleRadius, nil)
	return f
}

// HitTest returns the topmost bubble containing (x, y) in stage
// coordinates. Later bubbles are drawn on top.
func (f Frame) HitTest(x, y float64) (BubbleView, bool) {
	for i := len(f.Bubbles) - 1; i >= 0; i-- {
		if f.Bubbles[i].Contains(x, y) {
			return f.Bubbles[i], true
		}
	}
	return BubbleView{}, false
}
