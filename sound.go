package wordarena

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	popStartFreq = 880.0
	popEndFreq   = 330.0
	popLength    = 90 * time.Millisecond
	popVolume    = -1.5 // log2 gain for effects.Volume
)

// popTone is a sine sweep from startFreq to endFreq with an exponential
// decay, heard as a short "pop".
type popTone struct {
	startFreq, endFreq float64
	phase              float64
	position, total    int
	rate               beep.SampleRate
}

func newPopTone(startFreq, endFreq float64, d time.Duration, rate beep.SampleRate) *popTone {
	return &popTone{startFreq: startFreq, endFreq: endFreq, total: rate.N(d), rate: rate}
}

func (t *popTone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		k := float64(t.position) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*k
		env := math.Exp(-5 * k)
		val := math.Sin(2*math.Pi*t.phase) * env

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *popTone) Err() error { return nil }

// Sound plays the burst effect. A zero Sound or one whose speaker failed to
// start is silent.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSound starts the speaker. The returned Sound is usable even when err is
// non-nil; it just stays silent.
func NewSound() (*Sound, error) {
	s := &Sound{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return s, err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Pop plays one burst sound. Overlapping pops are mixed.
func (s *Sound) Pop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	v := &effects.Volume{
		Streamer: newPopTone(popStartFreq, popEndFreq, popLength, sampleRate),
		Base:     2,
		Volume:   popVolume,
	}
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
}

// Close stops all playing sounds.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
