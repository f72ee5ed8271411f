package story

import "time"

// Identifiers the machine uses when talking to the stage. The stage decides
// what they mean visually; the machine only knows the contract.
const (
	MeshOrb      = "orb"
	LightAmbient = "ambient"
	LightPoint   = "point"
)

// GroupKind selects which ephemeral particle effect a spawn request wants.
type GroupKind int

const (
	GroupShatter GroupKind = iota
	GroupSwirl
)

// ParticleSpec describes a particle group to spawn. Origin matters only for
// the shatter burst; the swirl follows the player wherever they stand.
type ParticleSpec struct {
	Kind   GroupKind
	Origin [3]float32
}

// ParticleHandle identifies a spawned group so it can be reclaimed later.
type ParticleHandle int

// Overlay is the player-facing text surface.
type Overlay interface {
	ShowText(text string)
	HideText()
	StartFade(duration time.Duration)
	ShowRestartPrompt()
}

// AudioBus is the audio effects bus. Implementations must tolerate being
// driven before the audio device exists by silently doing nothing.
type AudioBus interface {
	SetMasterVolume(level float32)
	SetReverbMix(wet, dry float32)
	PlayTransitionTone(startHz, endHz float32, sweep time.Duration)
}

// Stage is the scene collaborator. SetLightIntensity takes a fraction of the
// light's base intensity, not an absolute value.
type Stage interface {
	SetMeshVisible(id string, visible bool)
	SetLightIntensity(id string, level float32)
	SpawnParticleGroup(spec ParticleSpec) ParticleHandle
	RemoveParticleGroup(h ParticleHandle)
}

// Logger is the slice of the session logger the machine needs.
type Logger interface {
	Log(line string)
}
