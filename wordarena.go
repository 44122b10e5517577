package wordarena

import (
	"image/color"
	"math/rand/v2"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default bubble fill.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts c to a straight-alpha image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// LerpColor linearly interpolates every channel from a to b by t.
func LerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// Vec2 is a 2D vector used for positions, offsets and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng, or from the
// global source when rng is nil.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + randFloat(rng)*(r.Max-r.Min)
}

// DurationRange is a min/max range of durations.
type DurationRange struct {
	Min, Max time.Duration
}

// Random returns a random duration in [Min, Max].
func (r DurationRange) Random(rng *rand.Rand) time.Duration {
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + time.Duration(randFloat(rng)*float64(r.Max-r.Min))
}

// InteractionMode selects how pointer input removes bubbles.
type InteractionMode uint8

const (
	InteractionPress InteractionMode = iota // short press removes one, long press removes all with the same text
	InteractionClick                        // a click removes the clicked instance
)

// String returns the config spelling of the mode.
func (m InteractionMode) String() string {
	switch m {
	case InteractionPress:
		return "press"
	case InteractionClick:
		return "click"
	default:
		return "unknown"
	}
}

// SyncMode selects how the registry is reconciled with the physics world.
type SyncMode uint8

const (
	SyncIncremental SyncMode = iota // only add and remove the delta
	SyncRebuild                     // drop every word body and respawn all of them
)

// String returns the config spelling of the mode.
func (m SyncMode) String() string {
	switch m {
	case SyncIncremental:
		return "incremental"
	case SyncRebuild:
		return "rebuild"
	default:
		return "unknown"
	}
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
