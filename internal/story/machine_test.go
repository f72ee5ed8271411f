package story

import (
	"testing"
	"time"
)

type fakeOverlay struct {
	shown      []string
	current    string
	visible    bool
	hides      int
	fadeDur    time.Duration
	restartSet bool
}

func (f *fakeOverlay) ShowText(text string) {
	f.shown = append(f.shown, text)
	f.current = text
	f.visible = true
}

func (f *fakeOverlay) HideText() {
	f.hides++
	f.current = ""
	f.visible = false
}

func (f *fakeOverlay) StartFade(d time.Duration) { f.fadeDur = d }
func (f *fakeOverlay) ShowRestartPrompt()        { f.restartSet = true }

type toneCall struct {
	startHz, endHz float32
	sweep          time.Duration
}

type fakeAudio struct {
	volumes []float32
	wet     float32
	dry     float32
	tones   []toneCall
}

func (f *fakeAudio) SetMasterVolume(level float32) { f.volumes = append(f.volumes, level) }
func (f *fakeAudio) SetReverbMix(wet, dry float32) { f.wet, f.dry = wet, dry }
func (f *fakeAudio) PlayTransitionTone(s, e float32, d time.Duration) {
	f.tones = append(f.tones, toneCall{s, e, d})
}

type fakeStage struct {
	visible map[string]bool
	lights  map[string]float32
	spawned []ParticleSpec
	removed []ParticleHandle
	next    ParticleHandle
}

func newFakeStage() *fakeStage {
	return &fakeStage{visible: map[string]bool{MeshOrb: true}, lights: map[string]float32{}}
}

func (f *fakeStage) SetMeshVisible(id string, v bool) { f.visible[id] = v }

func (f *fakeStage) SetLightIntensity(id string, lv float32) { f.lights[id] = lv }

func (f *fakeStage) RemoveParticleGroup(h ParticleHandle) { f.removed = append(f.removed, h) }

func (f *fakeStage) SpawnParticleGroup(s ParticleSpec) ParticleHandle {
	f.spawned = append(f.spawned, s)
	f.next++
	return f.next
}

type nopLog struct{}

func (nopLog) Log(string) {}

type rig struct {
	m       *Machine
	overlay *fakeOverlay
	audio   *fakeAudio
	stage   *fakeStage
	now     time.Time
}

func newRig() *rig {
	r := &rig{
		overlay: &fakeOverlay{},
		audio:   &fakeAudio{},
		stage:   newFakeStage(),
		now:     time.Unix(1000, 0),
	}
	r.m = NewMachine(DefaultTuning(), [3]float32{0, 1, 0}, r.overlay, r.audio, r.stage, nopLog{})
	return r
}

func (r *rig) tick(distance float32, step time.Duration) {
	r.now = r.now.Add(step)
	r.m.Tick(distance, r.now)
}

func line(p Phase) string { return DefaultTuning().Lines[p] }

func TestMonotonicDescentShowsEachPhaseOnce(t *testing.T) {
	r := newRig()
	for d := float32(12); d > 0.5; d -= 0.5 {
		r.tick(d, 50*time.Millisecond)
	}
	want := []string{
		line(PhaseIntro),
		line(PhaseApproaching),
		line(PhaseVeryClose),
		line(PhaseTouch),
	}
	if len(r.overlay.shown) != len(want) {
		t.Fatalf("shown %d texts, want %d: %q", len(r.overlay.shown), len(want), r.overlay.shown)
	}
	for i, w := range want {
		if r.overlay.shown[i] != w {
			t.Fatalf("text %d = %q, want %q", i, r.overlay.shown[i], w)
		}
	}
	if !r.m.Completed() {
		t.Fatalf("descent below touch distance should complete the game")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	r := newRig()
	r.tick(9, 16*time.Millisecond)
	r.tick(9, 16*time.Millisecond)
	r.tick(9, 16*time.Millisecond)
	if len(r.overlay.shown) != 1 {
		t.Fatalf("repeated ticks at one distance showed %d texts, want 1", len(r.overlay.shown))
	}
}

func TestSamePhaseDoesNotRestartHideTimer(t *testing.T) {
	r := newRig()
	r.tick(9, 0) // Intro shown, hides 3 s later
	r.tick(9, 2*time.Second)
	if !r.overlay.visible {
		t.Fatalf("text should still be visible at 2 s")
	}
	// Step outside the intro band so the ladder stays quiet; if the 2 s tick
	// had restarted the timer, the text would still be up at 3.1 s.
	r.tick(11, 1100*time.Millisecond)
	if r.overlay.visible {
		t.Fatalf("hide deadline must stay at the first display, not restart")
	}
	if r.m.Phase() != PhaseNone {
		t.Fatalf("phase = %v after hide, want none", r.m.Phase())
	}
}

func TestRetreatNeverDowngradesDisplay(t *testing.T) {
	r := newRig()
	r.tick(3.5, 0)
	if r.m.Phase() != PhaseVeryClose {
		t.Fatalf("phase = %v, want very-close", r.m.Phase())
	}
	r.tick(7, 500*time.Millisecond) // retreat while text showing
	if r.m.Phase() != PhaseVeryClose || len(r.overlay.shown) != 1 {
		t.Fatalf("retreat replaced the showing phase: %v %q", r.m.Phase(), r.overlay.shown)
	}
	r.tick(7, 3*time.Second) // hide fires, then ladder re-enters at Intro range
	if r.m.Phase() != PhaseIntro {
		t.Fatalf("after hide at distance 7, phase = %v, want intro", r.m.Phase())
	}
}

func TestApproachEscalatesShowingPhase(t *testing.T) {
	r := newRig()
	r.tick(9, 0)
	r.tick(5, 200*time.Millisecond) // Intro still showing; closer phase wins
	if r.m.Phase() != PhaseApproaching {
		t.Fatalf("phase = %v, want approaching", r.m.Phase())
	}
	r.tick(3, 200*time.Millisecond)
	if r.m.Phase() != PhaseVeryClose {
		t.Fatalf("phase = %v, want very-close", r.m.Phase())
	}
}

func TestEndToEndScenario(t *testing.T) {
	r := newRig()
	for _, d := range []float32{12, 9, 7, 5, 3, 1.2} {
		r.tick(d, time.Second)
	}
	want := []string{
		line(PhaseIntro),
		line(PhaseApproaching),
		line(PhaseVeryClose),
		line(PhaseTouch),
	}
	for i, w := range want {
		if i >= len(r.overlay.shown) || r.overlay.shown[i] != w {
			t.Fatalf("display sequence %q, want %q", r.overlay.shown, want)
		}
	}
	if !r.m.Completed() {
		t.Fatalf("distance 1.2 must trigger the transformation")
	}
	if len(r.stage.spawned) != 1 || r.stage.spawned[0].Kind != GroupShatter {
		t.Fatalf("trigger tick should spawn exactly the shatter burst, got %v", r.stage.spawned)
	}
	if r.stage.visible[MeshOrb] {
		t.Fatalf("orb mesh should be hidden on trigger")
	}
}

func TestCompletedLatchSilencesLadder(t *testing.T) {
	r := newRig()
	r.tick(1.0, 0)
	if !r.m.Completed() {
		t.Fatalf("expected trigger")
	}
	shown := len(r.overlay.shown)
	// Every distance band, repeatedly, within the touch-display window.
	for _, d := range []float32{20, 9, 5, 3, 0.2, 0.2} {
		r.tick(d, 100*time.Millisecond)
	}
	if len(r.overlay.shown) != shown {
		t.Fatalf("ladder displayed text after completion: %q", r.overlay.shown[shown:])
	}
	if got := len(r.stage.spawned); got != 1 {
		t.Fatalf("trigger fired %d times, want once", got)
	}
}

func TestAudioCouplingStopsAfterCompletion(t *testing.T) {
	r := newRig()
	r.tick(5, 0)
	if n := len(r.audio.volumes); n != 1 {
		t.Fatalf("expected one volume write per tick, got %d", n)
	}
	// p = 0.5 -> volume 0.25, wet 0.4, dry 0.75
	if v := r.audio.volumes[0]; !close32(v, 0.25) {
		t.Fatalf("volume at distance 5 = %v, want 0.25", v)
	}
	if !close32(r.audio.wet, 0.4) || !close32(r.audio.dry, 0.75) {
		t.Fatalf("reverb at distance 5 = (%v, %v), want (0.4, 0.75)", r.audio.wet, r.audio.dry)
	}
	r.tick(1.0, 100*time.Millisecond) // last proximity write, then trigger
	n := len(r.audio.volumes)
	r.tick(1.0, 100*time.Millisecond)
	r.tick(0.5, 100*time.Millisecond)
	if len(r.audio.volumes) != n {
		t.Fatalf("proximity kept driving the bus after completion")
	}
}

func TestSetTuningKeepsProgress(t *testing.T) {
	r := newRig()
	r.tick(9, 0)
	tun := DefaultTuning()
	tun.Lines[PhaseApproaching] = "closer now"
	r.m.SetTuning(tun)
	if r.m.Phase() != PhaseIntro {
		t.Fatalf("tuning swap must not reset the phase")
	}
	r.tick(5, 100*time.Millisecond)
	if r.overlay.current != "closer now" {
		t.Fatalf("new tuning text not used: %q", r.overlay.current)
	}
}

func close32(got, want float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}
