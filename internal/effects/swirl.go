package effects

import (
	"math/rand"

	"github.com/chewxy/math32"
)

const (
	swirlCount       = 64
	swirlBaseRadius  = 0.8  // orbit radius before expansion, world units
	swirlHeadHeight  = 1.6  // orbit center above the player's feet
	swirlPulsePeriod = 10.0 // seconds for one full 1-to-2 expansion pulse
	swirlLifetime    = 16.0 // seconds; carries through the fade, then expires
	swirlSize        = 0.05
)

type mote struct {
	angle      float32
	angularVel float32 // radians/s
	radius     float32 // individual spread around the base radius
	height     float32 // offset from the orbit center
}

// Swirl is the ring of motes that orbits the player's head during the
// transformation. The ring breathes: its radius expands from 1× to 2× over a
// repeating 10-second pulse, and the motes dim as the ring widens, so the
// effect is a recurring bloom rather than a single fade-out.
type Swirl struct {
	motes   []mote
	elapsed float32
	focus   [3]float32
}

// NewSwirl spawns the orbit ring; it follows whatever focus Update receives.
func NewSwirl(rng *rand.Rand) *Swirl {
	s := &Swirl{motes: make([]mote, swirlCount)}
	for i := range s.motes {
		s.motes[i] = mote{
			angle:      rng.Float32() * 2 * math32.Pi,
			angularVel: 0.8 + rng.Float32()*1.2,
			radius:     swirlBaseRadius * (0.8 + rng.Float32()*0.4),
			height:     (rng.Float32()*2 - 1) * 0.35,
		}
	}
	return s
}

// expandFactor cycles 1→2 over the pulse period, wrapping back to 1.
func expandFactor(elapsed float32) float32 {
	return 1 + math32.Mod(elapsed, swirlPulsePeriod)/swirlPulsePeriod
}

// pulseOpacity dims the ring as it expands: 1 at rest, 0.5 at full width.
func pulseOpacity(expand float32) float32 {
	op := 1 - (expand-1)/2
	if op < 0 {
		return 0
	}
	return op
}

func (s *Swirl) Update(dt float32, focus [3]float32) bool {
	s.elapsed += dt
	if s.elapsed >= swirlLifetime {
		return false
	}
	for i := range s.motes {
		s.motes[i].angle += s.motes[i].angularVel * dt
	}
	s.focus = focus
	return true
}

func (s *Swirl) Points() []Point {
	expand := expandFactor(s.elapsed)
	op := pulseOpacity(expand)
	pts := make([]Point, len(s.motes))
	for i, m := range s.motes {
		r := m.radius * expand
		pts[i] = Point{
			Pos: [3]float32{
				s.focus[0] + math32.Cos(m.angle)*r,
				s.focus[1] + swirlHeadHeight + m.height,
				s.focus[2] + math32.Sin(m.angle)*r,
			},
			Size:    swirlSize,
			R:       225,
			G:       200,
			B:       255,
			Opacity: op,
		}
	}
	return pts
}
