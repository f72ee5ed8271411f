package effects

import "math/rand"

const (
	shatterCount    = 48
	shatterSpread   = 1.5 // initial velocity in a ±spread cube, units/s
	shatterGravity  = -2  // units/s² on Y
	shatterLifeMin  = 2.0 // seconds
	shatterLifeMax  = 4.0
	shatterFadeLife = 3.0 // opacity = life/fadeLife, clamped
	shatterSize     = 0.07
)

type shard struct {
	pos  [3]float32
	vel  [3]float32
	life float32
}

// Shatter is the burst of glowing shards released when the orb breaks apart.
// Shards fly out in random directions, fall under gravity, and fade with
// their remaining lifetime; the group expires when the last shard does.
type Shatter struct {
	shards []shard
}

// NewShatter spawns a burst at origin. rng keeps generation deterministic
// for a seeded world.
func NewShatter(origin [3]float32, rng *rand.Rand) *Shatter {
	s := &Shatter{shards: make([]shard, shatterCount)}
	for i := range s.shards {
		s.shards[i] = shard{
			pos: origin,
			vel: [3]float32{
				(rng.Float32()*2 - 1) * shatterSpread,
				(rng.Float32()*2 - 1) * shatterSpread,
				(rng.Float32()*2 - 1) * shatterSpread,
			},
			life: shatterLifeMin + rng.Float32()*(shatterLifeMax-shatterLifeMin),
		}
	}
	return s
}

// Update integrates shard kinematics and drops shards whose life reached
// zero. Returns false when the burst is spent.
func (s *Shatter) Update(dt float32, _ [3]float32) bool {
	for i := 0; i < len(s.shards); {
		sh := &s.shards[i]
		sh.life -= dt
		if sh.life <= 0 {
			s.shards[i] = s.shards[len(s.shards)-1]
			s.shards = s.shards[:len(s.shards)-1]
			continue
		}
		sh.vel[1] += shatterGravity * dt
		sh.pos[0] += sh.vel[0] * dt
		sh.pos[1] += sh.vel[1] * dt
		sh.pos[2] += sh.vel[2] * dt
		i++
	}
	return len(s.shards) > 0
}

func (s *Shatter) Points() []Point {
	pts := make([]Point, len(s.shards))
	for i, sh := range s.shards {
		op := sh.life / shatterFadeLife
		if op > 1 {
			op = 1
		}
		if op < 0 {
			op = 0
		}
		pts[i] = Point{Pos: sh.pos, Size: shatterSize, R: 255, G: 220, B: 130, Opacity: op}
	}
	return pts
}
