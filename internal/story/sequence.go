package story

import "time"

// RunState tracks progression through the one-shot transformation sequence.
type RunState int

const (
	RunTriggered RunState = iota
	RunShattering
	RunTransforming
	RunFadingToEpilogue
	RunAwaitingRestart
)

func (s RunState) String() string {
	switch s {
	case RunTriggered:
		return "triggered"
	case RunShattering:
		return "shattering"
	case RunTransforming:
		return "transforming"
	case RunFadingToEpilogue:
		return "fading-to-epilogue"
	case RunAwaitingRestart:
		return "awaiting-restart"
	}
	return "unknown"
}

// Offsets of each step from the trigger instant. The fade starts shortly
// after the epilogue text so the overlay exists on screen before its opacity
// ramp begins; the restart prompt appears once the fade has fully whited out.
const (
	stepShatterAt   = 0
	stepTransformAt = 3000 * time.Millisecond
	stepEpilogueAt  = 8000 * time.Millisecond
	stepFadeAt      = 8100 * time.Millisecond
	stepRestartAt   = 16100 * time.Millisecond

	fadeDuration = 8000 * time.Millisecond

	dimAmbient = 0.1
	dimPoint   = 0.2

	toneStartHz = 220
	toneEndHz   = 880
	toneSweep   = 3 * time.Second
)

type step struct {
	at time.Duration
	do func(now time.Time)
}

// Run is the transformation sequence: a fixed, linear chain of wall-clock
// steps executed by the tick loop. There is no cancellation once triggered;
// if the host stalls, the chain simply resumes late.
type Run struct {
	m      *Machine
	start  time.Time
	steps  []step
	next   int
	state  RunState
	groups []ParticleHandle
}

// State returns the current sequence state.
func (r *Run) State() RunState { return r.state }

func newRun(m *Machine, now time.Time) *Run {
	r := &Run{m: m, start: now, state: RunTriggered}
	r.steps = []step{
		{stepShatterAt, r.shatter},
		{stepTransformAt, r.transform},
		{stepEpilogueAt, r.epilogue},
		{stepFadeAt, r.fade},
		{stepRestartAt, r.offerRestart},
	}
	return r
}

// advance fires every step whose offset has elapsed. Steps are ordered, so a
// long stall fires the backlog in sequence within a single tick.
func (r *Run) advance(now time.Time) {
	for r.next < len(r.steps) {
		s := r.steps[r.next]
		if now.Sub(r.start) < s.at {
			return
		}
		r.next++
		s.do(now)
	}
}

func (r *Run) shatter(now time.Time) {
	r.state = RunShattering
	r.m.display(PhaseTouch, touchDisplay, now)
	h := r.m.stage.SpawnParticleGroup(ParticleSpec{Kind: GroupShatter, Origin: r.m.orbPos})
	r.groups = append(r.groups, h)
	r.m.stage.SetMeshVisible(MeshOrb, false)
}

func (r *Run) transform(now time.Time) {
	r.state = RunTransforming
	r.m.display(PhaseTransformation, transformationDisplay, now)
	h := r.m.stage.SpawnParticleGroup(ParticleSpec{Kind: GroupSwirl})
	r.groups = append(r.groups, h)
	r.m.stage.SetLightIntensity(LightAmbient, dimAmbient)
	r.m.stage.SetLightIntensity(LightPoint, dimPoint)
	r.m.audio.SetReverbMix(1, 0.5)
	r.m.audio.PlayTransitionTone(toneStartHz, toneEndHz, toneSweep)
}

func (r *Run) epilogue(now time.Time) {
	r.state = RunFadingToEpilogue
	r.m.display(PhaseEpilogue, epilogueDisplay, now)
}

func (r *Run) fade(time.Time) {
	r.m.overlay.StartFade(fadeDuration)
}

func (r *Run) offerRestart(time.Time) {
	r.state = RunAwaitingRestart
	r.m.overlay.ShowRestartPrompt()
	r.m.log.Log("awaiting restart")
}

func (r *Run) cleanup() {
	for _, h := range r.groups {
		r.m.stage.RemoveParticleGroup(h)
	}
	r.groups = nil
}
