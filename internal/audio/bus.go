package audio

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const chunkSamples = 1024

// Bus is the audio effects bus: a looping ambient drone plus one-shot voices,
// mixed through the reverb into a single mono raylib audio stream. If the
// audio device cannot be opened (or audio is disabled in config), every
// method is a silent no-op and the experience runs unaffected.
type Bus struct {
	available bool
	stream    rl.AudioStream
	reverb    *Reverb
	drone     []float32
	dronePos  int
	voices    []voice
	chunk     []float32
}

type voice struct {
	buf []float32
	pos int
}

// NewBus opens the audio device and starts the ambient stream. With enabled
// false, or when the device fails to come up, the returned bus is inert.
func NewBus(enabled bool) *Bus {
	b := &Bus{}
	if !enabled {
		return b
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return b
	}
	rl.SetAudioStreamBufferSizeDefault(chunkSamples)
	b.stream = rl.LoadAudioStream(SampleRate, 32, 1)
	b.reverb = NewReverb()
	b.drone = renderDroneLoop()
	b.chunk = make([]float32, chunkSamples)
	b.available = true
	rl.PlayAudioStream(b.stream)
	return b
}

// Available reports whether the device is up. The story machine never needs
// to ask; it drives the bus blindly.
func (b *Bus) Available() bool { return b.available }

// SetMasterVolume sets the device master volume, clamped to [0,1].
func (b *Bus) SetMasterVolume(level float32) {
	if !b.available {
		return
	}
	rl.SetMasterVolume(clamp01(level))
}

// SetReverbMix sets the reverb wet/dry levels for everything on the bus.
func (b *Bus) SetReverbMix(wet, dry float32) {
	if !b.available {
		return
	}
	b.reverb.SetMix(wet, dry)
}

// PlayTransitionTone queues the rising transformation tone: startHz to endHz
// over sweep, envelope carrying it out to five seconds.
func (b *Bus) PlayTransitionTone(startHz, endHz float32, sweep time.Duration) {
	if !b.available {
		return
	}
	buf := renderTransitionTone(startHz, endHz, float32(sweep.Seconds()))
	if buf == nil {
		return
	}
	b.voices = append(b.voices, voice{buf: buf})
}

// Update feeds the stream. Call once per frame; it fills however many chunks
// the device has drained since the last call.
func (b *Bus) Update() {
	if !b.available {
		return
	}
	for rl.IsAudioStreamProcessed(b.stream) {
		b.fillChunk()
		rl.UpdateAudioStream(b.stream, b.chunk)
	}
}

func (b *Bus) fillChunk() {
	for i := range b.chunk {
		b.chunk[i] = b.drone[b.dronePos]
		b.dronePos++
		if b.dronePos == len(b.drone) {
			b.dronePos = 0
		}
	}
	for v := 0; v < len(b.voices); {
		vc := &b.voices[v]
		n := copyMix(b.chunk, vc.buf[vc.pos:])
		vc.pos += n
		if vc.pos >= len(vc.buf) {
			b.voices[v] = b.voices[len(b.voices)-1]
			b.voices = b.voices[:len(b.voices)-1]
			continue
		}
		v++
	}
	b.reverb.Process(b.chunk, b.chunk)
}

// copyMix adds src into dst and returns how many samples were mixed.
func copyMix(dst, src []float32) int {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
	return n
}

// Close stops the stream and shuts the device down.
func (b *Bus) Close() {
	if !b.available {
		return
	}
	rl.StopAudioStream(b.stream)
	rl.UnloadAudioStream(b.stream)
	rl.CloseAudioDevice()
	b.available = false
}
