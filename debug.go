package wordarena

import (
	"time"

	"github.com/rs/zerolog"
)

const debugInterval = 2 * time.Second

// debugStats is a snapshot of arena counters.
type debugStats struct {
	words     int
	bodies    int
	particles int
	pops      int
	timers    int
	presses   int
	locked    bool
}

func collectStats(a *Arena) debugStats {
	return debugStats{
		words:     a.registry.Len(),
		bodies:    len(a.world.Bubbles()),
		particles: a.particles.AliveCount(),
		pops:      len(a.pops.pops),
		timers:    a.sched.Pending(),
		presses:   len(a.pressOrder),
		locked:    a.locked,
	}
}

// statsReporter logs arena counters at debug level once per interval.
type statsReporter struct {
	interval time.Duration
	next     time.Time
	frames   int
}

// tick counts a frame and reports whether stats were logged.
func (r *statsReporter) tick(now time.Time, a *Arena, log zerolog.Logger) bool {
	r.frames++
	if r.next.IsZero() {
		r.next = now.Add(r.interval)
		return false
	}
	if now.Before(r.next) {
		return false
	}
	s := collectStats(a)
	log.Debug().
		Int("frames", r.frames).
		Int("words", s.words).
		Int("bodies", s.bodies).
		Int("particles", s.particles).
		Int("pops", s.pops).
		Int("timers", s.timers).
		Int("presses", s.presses).
		Bool("locked", s.locked).
		Msg("arena stats")
	r.frames = 0
	r.next = now.Add(r.interval)
	return true
}
