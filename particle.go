package wordarena

import (
	"math"
	"math/rand/v2"
	"time"
)

// particle holds per-particle state. Position is not simulated: it is a
// function of elapsed time, so a particle only needs its launch parameters.
type particle struct {
	originX, originY float64
	dirX, dirY       float64
	distance         float64
	start            time.Time
	duration         time.Duration
}

// progress returns the fraction of the particle's life elapsed at now.
func (p *particle) progress(now time.Time) float64 {
	if p.duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(p.start)) / float64(p.duration))
}

// expired reports whether the particle's lifetime has fully elapsed.
func (p *particle) expired(now time.Time) bool {
	return now.Sub(p.start) >= p.duration
}

// BurstConfig controls how bursts look. Count and duration are chosen per
// SpawnBurst call.
type BurstConfig struct {
	// Distance is the range of travel distances in pixels.
	Distance Range
	// Jitter is the maximum per-particle angular offset in radians.
	Jitter float64
	// Size is the particle radius at birth; it shrinks to zero over the
	// particle's life.
	Size float64
	// Color tints every particle.
	Color Color
}

// ParticleView is a particle's rendered state at one instant.
type ParticleView struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	Color  Color
}

// ParticleTracker owns the decorative particles spawned by removals.
type ParticleTracker struct {
	config    BurstConfig
	particles []particle
	rng       *rand.Rand
}

// NewParticleTracker creates an empty tracker. rng may be nil.
func NewParticleTracker(cfg BurstConfig, rng *rand.Rand) *ParticleTracker {
	return &ParticleTracker{config: cfg, rng: rng}
}

// SpawnBurst launches count particles from (x, y), evenly spaced in angle
// with small jitter, each with a random distance and a random lifetime in
// duration. It returns the number spawned.
func (t *ParticleTracker) SpawnBurst(x, y float64, count int, duration DurationRange, now time.Time) int {
	if count <= 0 {
		return 0
	}
	step := 2 * math.Pi / float64(count)
	jitter := Range{Min: -t.config.Jitter, Max: t.config.Jitter}
	for i := 0; i < count; i++ {
		angle := float64(i)*step + jitter.Random(t.rng)
		t.particles = append(t.particles, particle{
			originX:  x,
			originY:  y,
			dirX:     math.Cos(angle),
			dirY:     math.Sin(angle),
			distance: t.config.Distance.Random(t.rng),
			start:    now,
			duration: duration.Random(t.rng),
		})
	}
	return count
}

// Sweep removes every particle whose lifetime has elapsed at now and
// returns how many were removed.
func (t *ParticleTracker) Sweep(now time.Time) int {
	removed := 0
	i := 0
	for i < len(t.particles) {
		if t.particles[i].expired(now) {
			// Swap with last particle.
			last := len(t.particles) - 1
			t.particles[i] = t.particles[last]
			t.particles = t.particles[:last]
			removed++
			continue
		}
		i++
	}
	return removed
}

// AliveCount returns the number of tracked particles.
func (t *ParticleTracker) AliveCount() int {
	return len(t.particles)
}

// Reset kills all particles.
func (t *ParticleTracker) Reset() {
	t.particles = t.particles[:0]
}

// Views appends the rendered state of every live particle at now to buf.
func (t *ParticleTracker) Views(now time.Time, buf []ParticleView) []ParticleView {
	for i := range t.particles {
		p := &t.particles[i]
		if p.expired(now) {
			continue
		}
		k := p.progress(now)
		d := p.distance * k
		buf = append(buf, ParticleView{
			X:      p.originX + p.dirX*d,
			Y:      p.originY + p.dirY*d,
			Radius: lerp(t.config.Size, 0, k),
			Alpha:  lerp(1, 0, k*k),
			Color:  t.config.Color,
		})
	}
	return buf
}
