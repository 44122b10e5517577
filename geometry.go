package wordarena

import (
	"math"
	"math/rand/v2"
)

// Wall is one static segment of the arena boundary. The box is centered on
// Center and rotated by Angle: its local X axis points away from the arena
// center (Thickness) and its local Y axis is tangent to the circle (Length).
type Wall struct {
	Center    Vec2
	Angle     float64
	Thickness float64
	Length    float64
}

// BuildWalls places count walls evenly around a circle of the given inner
// radius. Wall i sits at angle 2πi/count with its inner face on the circle.
// Length is clamped so that neighbouring walls never overlap. Fewer than
// three walls cannot enclose anything and yield nil.
func BuildWalls(center Vec2, radius float64, count int, thickness, length float64) []Wall {
	if count < 3 || radius <= 0 {
		return nil
	}
	// Inner corners of adjacent walls meet when half the length equals
	// radius*tan(π/count).
	if maxLen := 2 * radius * math.Tan(math.Pi/float64(count)); length > maxLen {
		length = maxLen
	}
	dist := radius + thickness/2

	walls := make([]Wall, count)
	for i := range walls {
		angle := 2 * math.Pi * float64(i) / float64(count)
		walls[i] = Wall{
			Center: Vec2{
				X: center.X + dist*math.Cos(angle),
				Y: center.Y + dist*math.Sin(angle),
			},
			Angle:     angle,
			Thickness: thickness,
			Length:    length,
		}
	}
	return walls
}

// Corners returns the four corners of the wall box in world coordinates,
// inner face first.
func (w Wall) Corners() [4]Vec2 {
	cos, sin := math.Cos(w.Angle), math.Sin(w.Angle)
	radial := Vec2{cos, sin}
	tangent := Vec2{-sin, cos}
	ht, hl := w.Thickness/2, w.Length/2
	return [4]Vec2{
		w.Center.Sub(radial.Scale(ht)).Sub(tangent.Scale(hl)),
		w.Center.Sub(radial.Scale(ht)).Add(tangent.Scale(hl)),
		w.Center.Add(radial.Scale(ht)).Add(tangent.Scale(hl)),
		w.Center.Add(radial.Scale(ht)).Sub(tangent.Scale(hl)),
	}
}

// RandomPointInDisc returns a point distributed uniformly over the disc.
func RandomPointInDisc(rng *rand.Rand, center Vec2, radius float64) Vec2 {
	t := 2 * math.Pi * randFloat(rng)
	r := radius * math.Sqrt(randFloat(rng))
	return Vec2{
		X: center.X + r*math.Cos(t),
		Y: center.Y + r*math.Sin(t),
	}
}

// RandomVelocity returns a velocity with each axis uniform in [-max, max].
func RandomVelocity(rng *rand.Rand, max float64) Vec2 {
	return Vec2{
		X: (randFloat(rng) - 0.5) * 2 * max,
		Y: (randFloat(rng) - 0.5) * 2 * max,
	}
}
