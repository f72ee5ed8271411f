package audio

// Reverb is a small parallel feedback-comb network with a live wet/dry mix.
// Comb delays are mutually prime sample counts so their echoes do not stack
// into a metallic ring. State persists across Process calls, which is what
// produces the tail after the input goes quiet.
type Reverb struct {
	combs [4]comb
	wet   float32
	dry   float32
}

type comb struct {
	buf      []float32
	idx      int
	feedback float32
}

var combDelays = [4]int{1429, 1553, 1621, 1787}

const combFeedback = 0.72

// NewReverb returns a reverb with a fully dry mix.
func NewReverb() *Reverb {
	r := &Reverb{dry: 1}
	for i := range r.combs {
		r.combs[i] = comb{buf: make([]float32, combDelays[i]), feedback: combFeedback}
	}
	return r
}

// SetMix sets the wet and dry levels, each clamped to [0,1].
func (r *Reverb) SetMix(wet, dry float32) {
	r.wet = clamp01(wet)
	r.dry = clamp01(dry)
}

// Mix returns the current wet and dry levels.
func (r *Reverb) Mix() (wet, dry float32) { return r.wet, r.dry }

// Process filters in into out (the slices may alias). Wet 0 with dry 1
// passes the signal through untouched but still feeds the comb state, so a
// later wet turn-up has a tail ready.
func (r *Reverb) Process(in, out []float32) {
	for i, x := range in {
		var wetSum float32
		for c := range r.combs {
			wetSum += r.combs[c].process(x)
		}
		out[i] = r.dry*x + r.wet*wetSum*0.25
	}
}

func (c *comb) process(x float32) float32 {
	y := c.buf[c.idx]
	c.buf[c.idx] = x + y*c.feedback
	c.idx++
	if c.idx == len(c.buf) {
		c.idx = 0
	}
	return y
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
