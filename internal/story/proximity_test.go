package story

import "testing"

func TestProximityFactor(t *testing.T) {
	cases := []struct {
		name     string
		distance float32
		max      float32
		want     float32
	}{
		{"at_orb", 0, 10, 1},
		{"at_range_edge", 10, 10, 0},
		{"beyond_range", 25, 10, 0},
		{"midway", 5, 10, 0.5},
		{"degenerate_range", 3, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Factor(c.distance, c.max); !close32(got, c.want) {
				t.Fatalf("Factor(%v, %v) = %v, want %v", c.distance, c.max, got, c.want)
			}
		})
	}
}

func TestVolumeMapping(t *testing.T) {
	if got := Volume(0); !close32(got, 0.7) {
		t.Fatalf("Volume(0) = %v, want 0.7", got)
	}
	// Raw curve at p=1 is -0.2; the mapping clamps to zero.
	if got := Volume(1); got != 0 {
		t.Fatalf("Volume(1) = %v, want 0 after clamping", got)
	}
	if got := Volume(0.5); !close32(got, 0.25) {
		t.Fatalf("Volume(0.5) = %v, want 0.25", got)
	}
}

func TestReverbMixMapping(t *testing.T) {
	wet, dry := ReverbMix(0)
	if !close32(wet, 0) || !close32(dry, 1) {
		t.Fatalf("ReverbMix(0) = (%v, %v), want (0, 1)", wet, dry)
	}
	wet, dry = ReverbMix(1)
	if !close32(wet, 0.8) || !close32(dry, 0.5) {
		t.Fatalf("ReverbMix(1) = (%v, %v), want (0.8, 0.5)", wet, dry)
	}
}

func TestDistance(t *testing.T) {
	a := [3]float32{1, 2, 3}
	b := [3]float32{1, 2, 3}
	if got := Distance(a, b); got != 0 {
		t.Fatalf("Distance(a, a) = %v, want 0", got)
	}
	if got := Distance([3]float32{0, 0, 0}, [3]float32{3, 4, 0}); !close32(got, 5) {
		t.Fatalf("3-4-5 triangle distance = %v, want 5", got)
	}
}
