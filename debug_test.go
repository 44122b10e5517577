package wordarena

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStatsReporterInterval(t *testing.T) {
	a, _ := newTestArena(t, nil)
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := statsReporter{interval: time.Second}

	if r.tick(t0, a, log) {
		t.Error("first tick should only arm the reporter")
	}
	if r.tick(t0.Add(500*time.Millisecond), a, log) {
		t.Error("logged before the interval")
	}
	if !r.tick(t0.Add(time.Second), a, log) {
		t.Fatal("expected a report at the interval")
	}
	if !strings.Contains(buf.String(), `"frames":3`) {
		t.Errorf("log = %s", buf.String())
	}
	if r.tick(t0.Add(1500*time.Millisecond), a, log) {
		t.Error("logged again before the next interval")
	}
}

func TestCollectStats(t *testing.T) {
	a, _ := newTestArena(t, nil)
	ws := mustAdd(t, a, "cat", "cat", "dog")

	a.PointerDown(ws[0].ID, t0)
	s := collectStats(a)
	if s.words != 3 || s.bodies != 3 || s.presses != 1 || s.locked {
		t.Errorf("stats = %+v", s)
	}

	a.Update(t0.Add(time.Second))
	s = collectStats(a)
	if s.words != 1 || s.bodies != 1 || !s.locked || s.presses != 0 {
		t.Errorf("after batch removal stats = %+v", s)
	}
	if s.timers == 0 || s.particles == 0 || s.pops == 0 {
		t.Errorf("expected pending effects, stats = %+v", s)
	}
}
