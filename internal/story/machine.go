package story

import "time"

// Machine owns the narrative state: the currently displayed phase, the
// pending hide deadline, and the gameCompleted latch that hands control to
// the transformation run. It runs entirely on the simulation tick; time is
// injected so tests can drive it with a virtual clock.
type Machine struct {
	tuning  Tuning
	orbPos  [3]float32
	overlay Overlay
	audio   AudioBus
	stage   Stage
	log     Logger

	phase     Phase
	hideAt    time.Time
	hideSet   bool
	completed bool
	run       *Run
}

// NewMachine returns a machine with no phase active. orbPos is where the
// shatter burst spawns when the terminal sequence fires.
func NewMachine(t Tuning, orbPos [3]float32, overlay Overlay, audio AudioBus, stage Stage, log Logger) *Machine {
	return &Machine{
		tuning:  t,
		orbPos:  orbPos,
		overlay: overlay,
		audio:   audio,
		stage:   stage,
		log:     log,
	}
}

// Phase returns the currently displayed phase (PhaseNone when no text shows).
func (m *Machine) Phase() Phase { return m.phase }

// Completed reports whether the transformation has been triggered this session.
func (m *Machine) Completed() bool { return m.completed }

// AwaitingRestart reports whether the terminal sequence has finished and the
// restart affordance is on screen.
func (m *Machine) AwaitingRestart() bool {
	return m.run != nil && m.run.State() == RunAwaitingRestart
}

// SetTuning swaps thresholds and narrative text, e.g. after a config hot
// reload. Progression state (phase, latch, run) is untouched.
func (m *Machine) SetTuning(t Tuning) { m.tuning = t }

// Tick advances the whole subsystem by one simulation frame: fires a due hide
// timer, couples proximity into the audio bus, walks the threshold ladder,
// and advances the transformation run if one exists. Calling it twice with
// the same distance and time is a no-op by construction.
func (m *Machine) Tick(distance float32, now time.Time) {
	if m.hideSet && !now.Before(m.hideAt) {
		m.hideSet = false
		m.phase = PhaseNone
		m.overlay.HideText()
	}

	if !m.completed {
		p := Factor(distance, m.tuning.AudioRange)
		m.audio.SetMasterVolume(Volume(p))
		wet, dry := ReverbMix(p)
		m.audio.SetReverbMix(wet, dry)
	}

	m.evaluate(distance, now)

	if m.run != nil {
		m.run.advance(now)
	}
}

// evaluate walks the threshold ladder closest-first. A showing phase is never
// replaced by a less urgent one; moving closer always escalates immediately.
// Once the latch is set the ladder goes quiet for good.
func (m *Machine) evaluate(distance float32, now time.Time) {
	if m.completed {
		return
	}
	switch {
	case distance < m.tuning.TouchDistance:
		m.trigger(now)
	case distance < m.tuning.CloseDistance:
		if m.phase.urgency() < PhaseVeryClose.urgency() {
			m.display(PhaseVeryClose, defaultDisplay, now)
		}
	case distance < m.tuning.ApproachDistance:
		if m.phase.urgency() < PhaseApproaching.urgency() {
			m.display(PhaseApproaching, defaultDisplay, now)
		}
	case distance < m.tuning.IntroDistance:
		if m.phase == PhaseNone {
			m.display(PhaseIntro, defaultDisplay, now)
		}
	}
}

// display shows a phase for the given duration. Same phase twice is a no-op
// so the hide timer never restarts from repeated ticks; a new phase
// overwrites any pending hide deadline, which is the cancel.
func (m *Machine) display(p Phase, d time.Duration, now time.Time) {
	if p == m.phase {
		return
	}
	m.phase = p
	m.hideAt = now.Add(d)
	m.hideSet = true
	m.overlay.ShowText(m.tuning.Lines[p])
	m.log.Log("phase: " + p.String())
}

// trigger starts the terminal sequence. The latch is set before anything
// else so a second call, even in the same tick, cannot duplicate the run.
func (m *Machine) trigger(now time.Time) {
	if m.completed {
		return
	}
	m.completed = true
	m.run = newRun(m, now)
	m.log.Log("transformation triggered")
}

// Cleanup reclaims any particle groups still owned by the run. Called when
// the player restarts the experience.
func (m *Machine) Cleanup() {
	if m.run != nil {
		m.run.cleanup()
	}
}
