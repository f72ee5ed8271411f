package audio

import "testing"

func TestReverbDryPassthrough(t *testing.T) {
	r := NewReverb()
	in := []float32{0.5, -0.25, 0.125, 0, 1}
	out := make([]float32, len(in))
	r.Process(in, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("dry mix altered sample %d: %v -> %v", i, in[i], out[i])
		}
	}
}

func TestReverbMixClamps(t *testing.T) {
	r := NewReverb()
	r.SetMix(1.7, -0.3)
	wet, dry := r.Mix()
	if wet != 1 || dry != 0 {
		t.Fatalf("mix = (%v, %v), want clamped (1, 0)", wet, dry)
	}
}

func TestReverbProducesTail(t *testing.T) {
	r := NewReverb()
	r.SetMix(1, 0)
	// One impulse, then silence long enough to pass the shortest comb delay.
	in := make([]float32, 4*combDelays[len(combDelays)-1])
	in[0] = 1
	out := make([]float32, len(in))
	r.Process(in, out)
	var energy float32
	for _, v := range out {
		if v < 0 {
			v = -v
		}
		energy += v
	}
	if energy == 0 {
		t.Fatalf("fully wet reverb produced no tail from an impulse")
	}
	if out[0] != 0 {
		t.Fatalf("wet-only output should carry no direct signal at sample 0")
	}
}

func TestReverbTailDecays(t *testing.T) {
	r := NewReverb()
	r.SetMix(1, 0)
	n := 8 * combDelays[len(combDelays)-1]
	in := make([]float32, n)
	in[0] = 1
	out := make([]float32, n)
	r.Process(in, out)
	early := peakOf(out[:n/4])
	late := peakOf(out[3*n/4:])
	if late >= early {
		t.Fatalf("tail should decay: early peak %v, late peak %v", early, late)
	}
}

func peakOf(buf []float32) float32 {
	var p float32
	for _, v := range buf {
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}
	return p
}
