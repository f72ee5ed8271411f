package story

import (
	"testing"
	"time"
)

// trigger puts the rig right at the orb so the terminal sequence starts.
func (r *rig) trigger() time.Time {
	r.tick(1.0, 0)
	return r.now
}

func (r *rig) at(t0 time.Time, offset time.Duration) {
	r.now = t0.Add(offset)
	// Distance no longer matters once completed; keep the player at the orb.
	r.m.Tick(1.0, r.now)
}

func TestTransformationSchedule(t *testing.T) {
	r := newRig()
	t0 := r.trigger()

	if r.overlay.current != line(PhaseTouch) {
		t.Fatalf("at T0 text = %q, want touch line", r.overlay.current)
	}
	if r.m.run.State() != RunShattering {
		t.Fatalf("at T0 state = %v, want shattering", r.m.run.State())
	}
	if r.stage.visible[MeshOrb] {
		t.Fatalf("orb should be hidden at T0")
	}
	if len(r.stage.spawned) != 1 || r.stage.spawned[0].Kind != GroupShatter {
		t.Fatalf("T0 spawns = %v, want one shatter burst", r.stage.spawned)
	}

	r.at(t0, 2999*time.Millisecond)
	if r.overlay.current != line(PhaseTouch) {
		t.Fatalf("touch text must hold until T0+3000, got %q", r.overlay.current)
	}

	r.at(t0, 3000*time.Millisecond)
	if r.overlay.current != line(PhaseTransformation) {
		t.Fatalf("at T0+3000 text = %q, want transformation line", r.overlay.current)
	}
	if r.m.run.State() != RunTransforming {
		t.Fatalf("at T0+3000 state = %v, want transforming", r.m.run.State())
	}
	if len(r.stage.spawned) != 2 || r.stage.spawned[1].Kind != GroupSwirl {
		t.Fatalf("transform step should spawn the swirl, got %v", r.stage.spawned)
	}
	if !close32(r.stage.lights[LightAmbient], 0.1) || !close32(r.stage.lights[LightPoint], 0.2) {
		t.Fatalf("lights = %v, want ambient 0.1 point 0.2", r.stage.lights)
	}
	if !close32(r.audio.wet, 1) || !close32(r.audio.dry, 0.5) {
		t.Fatalf("reverb = (%v, %v), want (1, 0.5)", r.audio.wet, r.audio.dry)
	}
	if len(r.audio.tones) != 1 {
		t.Fatalf("expected one transition tone, got %d", len(r.audio.tones))
	}
	tone := r.audio.tones[0]
	if tone.startHz != 220 || tone.endHz != 880 || tone.sweep != 3*time.Second {
		t.Fatalf("tone = %+v, want 220->880 over 3s", tone)
	}

	r.at(t0, 8000*time.Millisecond)
	if r.overlay.current != line(PhaseEpilogue) {
		t.Fatalf("at T0+8000 text = %q, want epilogue line", r.overlay.current)
	}
	if r.m.run.State() != RunFadingToEpilogue {
		t.Fatalf("at T0+8000 state = %v, want fading-to-epilogue", r.m.run.State())
	}
	if r.overlay.fadeDur != 0 {
		t.Fatalf("fade must not start before T0+8100")
	}

	r.at(t0, 8100*time.Millisecond)
	if r.overlay.fadeDur != 8*time.Second {
		t.Fatalf("fade duration = %v, want 8s", r.overlay.fadeDur)
	}

	r.at(t0, 16099*time.Millisecond)
	if r.overlay.restartSet {
		t.Fatalf("restart prompt appeared early")
	}
	r.at(t0, 16100*time.Millisecond)
	if !r.overlay.restartSet {
		t.Fatalf("restart prompt missing at T0+16100")
	}
	if !r.m.AwaitingRestart() {
		t.Fatalf("machine should report awaiting-restart")
	}
	if r.overlay.visible {
		t.Fatalf("epilogue text should have hidden at T0+16000")
	}
}

func TestStalledTickFiresBacklogInOrder(t *testing.T) {
	r := newRig()
	t0 := r.trigger()
	// One giant stall: every remaining step fires on a single late tick.
	r.at(t0, 20*time.Second)
	if !r.m.AwaitingRestart() {
		t.Fatalf("late tick should drain the whole chain")
	}
	if len(r.stage.spawned) != 2 {
		t.Fatalf("spawns = %v, want shatter then swirl", r.stage.spawned)
	}
	if r.stage.spawned[0].Kind != GroupShatter || r.stage.spawned[1].Kind != GroupSwirl {
		t.Fatalf("spawn order wrong: %v", r.stage.spawned)
	}
}

func TestTriggerFiresAtMostOnce(t *testing.T) {
	r := newRig()
	t0 := r.trigger()
	for i := 1; i <= 200; i++ {
		r.at(t0, time.Duration(i)*16*time.Millisecond)
	}
	if len(r.stage.spawned) != 2 {
		t.Fatalf("%d particle groups spawned, want 2 (shatter + swirl)", len(r.stage.spawned))
	}
	if len(r.audio.tones) != 1 {
		t.Fatalf("transition tone played %d times, want once", len(r.audio.tones))
	}
}

func TestCleanupReclaimsParticleGroups(t *testing.T) {
	r := newRig()
	t0 := r.trigger()
	r.at(t0, 4*time.Second) // shatter and swirl both spawned
	r.m.Cleanup()
	if len(r.stage.removed) != 2 {
		t.Fatalf("cleanup removed %d groups, want 2", len(r.stage.removed))
	}
	r.m.Cleanup()
	if len(r.stage.removed) != 2 {
		t.Fatalf("double cleanup must not remove twice")
	}
}

func TestShatterOriginIsOrbPosition(t *testing.T) {
	r := newRig()
	r.trigger()
	if got := r.stage.spawned[0].Origin; got != [3]float32{0, 1, 0} {
		t.Fatalf("shatter origin = %v, want orb position", got)
	}
}
