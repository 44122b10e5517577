package wordarena

import (
	"math"
	"testing"
	"time"
)

func TestPopToneLength(t *testing.T) {
	tone := newPopTone(880, 330, 10*time.Millisecond, sampleRate)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		total += n
		if total > want {
			t.Fatalf("streamed %d samples, want %d", total, want)
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if tone.Err() != nil {
		t.Errorf("Err = %v", tone.Err())
	}
}

func TestPopToneDecays(t *testing.T) {
	tone := newPopTone(880, 330, popLength, sampleRate)
	buf := make([][2]float64, sampleRate.N(popLength))
	n, _ := tone.Stream(buf)

	peak := func(from, to int) float64 {
		var m float64
		for _, s := range buf[from:to] {
			if s[0] != s[1] {
				t.Fatal("channels differ")
			}
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	quarter := n / 4
	head, tail := peak(0, quarter), peak(n-quarter, n)
	if head > 1 {
		t.Errorf("peak %v exceeds 1", head)
	}
	if tail >= head {
		t.Errorf("tail peak %v not below head peak %v", tail, head)
	}
}

func TestSilentSoundIsSafe(t *testing.T) {
	var nilSound *Sound
	nilSound.Pop()
	nilSound.Close()

	s := &Sound{}
	s.Pop()
	s.Close()
}
