package wordarena

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	popEndScale = 1.7
	popMaxTilt  = 20 * math.Pi / 180
)

// pop animates a removed bubble: its label grows, tilts and fades out.
type pop struct {
	text     string
	x, y     float64
	rotation float64
	scale    float64
	alpha    float64
	scaleTw  *gween.Tween
	alphaTw  *gween.Tween
	done     bool
}

func newPop(text string, pos Vec2, duration time.Duration, rng *rand.Rand) *pop {
	d := float32(duration.Seconds())
	return &pop{
		text:     text,
		x:        pos.X,
		y:        pos.Y,
		rotation: Range{Min: -popMaxTilt, Max: popMaxTilt}.Random(rng),
		scale:    1,
		alpha:    1,
		scaleTw:  gween.New(1, popEndScale, d, ease.OutBack),
		alphaTw:  gween.New(1, 0, d, ease.OutQuad),
	}
}

// update advances both tweens by dt seconds.
func (p *pop) update(dt float32) {
	if p.done {
		return
	}
	s, sDone := p.scaleTw.Update(dt)
	a, aDone := p.alphaTw.Update(dt)
	p.scale = float64(s)
	p.alpha = clamp01(float64(a))
	p.done = sDone && aDone
}

// PopView is a pop animation's rendered state.
type PopView struct {
	Text     string
	Center   Vec2
	Radius   float64
	Scale    float64
	Alpha    float64
	Rotation float64
}

// popSet owns the running pop animations.
type popSet struct {
	pops []*pop
}

func (s *popSet) add(p *pop) {
	s.pops = append(s.pops, p)
}

// update advances every pop and drops finished ones.
func (s *popSet) update(dt float32) {
	kept := s.pops[:0]
	for _, p := range s.pops {
		p.update(dt)
		if !p.done {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.pops); i++ {
		s.pops[i] = nil
	}
	s.pops = kept
}

func (s *popSet) views(radius float64, buf []PopView) []PopView {
	for _, p := range s.pops {
		buf = append(buf, PopView{
			Text:     p.text,
			Center:   Vec2{X: p.x, Y: p.y},
			Radius:   radius,
			Scale:    p.scale,
			Alpha:    p.alpha,
			Rotation: p.rotation,
		})
	}
	return buf
}
