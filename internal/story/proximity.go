package story

import "github.com/chewxy/math32"

// Distance is the proximity sampler: straight-line distance between two
// world positions, recomputed every tick and never stored.
func Distance(a, b [3]float32) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Factor maps a distance to a normalized proximity factor in [0,1]:
// 0 at or beyond maxDistance, 1 at the orb.
func Factor(distance, maxDistance float32) float32 {
	if maxDistance <= 0 {
		return 0
	}
	return clamp01(1 - distance/maxDistance)
}

// Volume maps proximity to master volume. The raw curve 0.7 - 0.9p dips
// below zero near the orb, so the result is clamped to [0,1]; the quiet
// point right before the touch is intentional.
func Volume(p float32) float32 {
	return clamp01(0.7 - p*0.9)
}

// ReverbMix maps proximity to the reverb wet/dry pair: the closer the
// player, the wetter and more hollow the soundscape.
func ReverbMix(p float32) (wet, dry float32) {
	return clamp01(p * 0.8), clamp01(1 - p*0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
