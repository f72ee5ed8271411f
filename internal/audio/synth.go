package audio

import "github.com/chewxy/math32"

// SampleRate for every buffer this package renders. Mono float32 throughout.
const SampleRate = 44100

// Transition tone shape: the frequency sweep spans the caller's duration, the
// amplitude envelope fixes the total length at five seconds — a short linear
// attack to the peak, then an exponential decay into silence.
const (
	toneTotalSec  = 5.0
	toneAttackSec = 0.1
	tonePeak      = 0.2
	toneFloor     = 0.001 // decay target treated as silence
)

// renderTransitionTone renders the rising tone played when the transformation
// begins: an exponential frequency sweep from startHz to endHz over sweepSec,
// held at endHz afterwards while the envelope decays out.
func renderTransitionTone(startHz, endHz, sweepSec float32) []float32 {
	if startHz <= 0 || endHz <= 0 || sweepSec <= 0 {
		return nil
	}
	n := int(toneTotalSec * SampleRate)
	buf := make([]float32, n)
	ratio := endHz / startHz
	decayK := math32.Log(tonePeak/toneFloor) / (toneTotalSec - toneAttackSec)

	var phase float32
	for i := range buf {
		t := float32(i) / SampleRate
		f := endHz
		if t < sweepSec {
			f = startHz * math32.Pow(ratio, t/sweepSec)
		}
		phase += f / SampleRate
		phase -= math32.Floor(phase)

		var amp float32
		if t < toneAttackSec {
			amp = tonePeak * t / toneAttackSec
		} else {
			amp = tonePeak * math32.Exp(-decayK*(t-toneAttackSec))
		}
		buf[i] = amp * math32.Sin(2*math32.Pi*phase)
	}
	return buf
}

// Ambient drone: a low chord with slow amplitude movement. The loop length
// and every frequency are chosen so each component completes a whole number
// of cycles per loop, making the wrap seamless.
const (
	droneLoopSec = 4.0
	droneLevel   = 0.5
)

var droneVoices = []struct {
	freq float32 // integer multiple of 1/droneLoopSec
	gain float32
}{
	{55, 0.45},
	{82.5, 0.3},
	{110, 0.2},
	{165, 0.05},
}

// renderDroneLoop renders one seamless cycle of the ambient bed.
func renderDroneLoop() []float32 {
	n := int(droneLoopSec * SampleRate)
	buf := make([]float32, n)
	for i := range buf {
		t := float32(i) / SampleRate
		var v float32
		for _, dv := range droneVoices {
			v += dv.gain * math32.Sin(2*math32.Pi*dv.freq*t)
		}
		// Slow breathing LFO, one full cycle per loop.
		lfo := 0.75 + 0.25*math32.Sin(2*math32.Pi*t/droneLoopSec)
		buf[i] = droneLevel * lfo * v
	}
	return buf
}
