package story

import "time"

// Phase is the current narrative beat. Intro/Approaching/VeryClose are
// distance-driven and re-enterable (the player can retreat and come back);
// Touch/Transformation/Epilogue belong to the one-way terminal sequence.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseIntro
	PhaseApproaching
	PhaseVeryClose
	PhaseTouch
	PhaseTransformation
	PhaseEpilogue
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseIntro:
		return "intro"
	case PhaseApproaching:
		return "approaching"
	case PhaseVeryClose:
		return "very-close"
	case PhaseTouch:
		return "touch"
	case PhaseTransformation:
		return "transformation"
	case PhaseEpilogue:
		return "epilogue"
	}
	return "unknown"
}

// Terminal reports whether p belongs to the one-way transformation sequence.
func (p Phase) Terminal() bool {
	return p == PhaseTouch || p == PhaseTransformation || p == PhaseEpilogue
}

// urgency orders the distance-driven phases: a showing phase may only be
// replaced by a strictly more urgent one (closer to the orb).
func (p Phase) urgency() int {
	switch p {
	case PhaseIntro:
		return 1
	case PhaseApproaching:
		return 2
	case PhaseVeryClose:
		return 3
	case PhaseTouch, PhaseTransformation, PhaseEpilogue:
		return 4
	}
	return 0
}

// Display durations. Distance-driven phases use the default; the terminal
// phases hold their text progressively longer as the sequence slows down.
const (
	defaultDisplay        = 3000 * time.Millisecond
	touchDisplay          = 3000 * time.Millisecond
	transformationDisplay = 5000 * time.Millisecond
	epilogueDisplay       = 8000 * time.Millisecond
)

// Tuning carries the distance thresholds and narrative lines. Values come
// from config/experience.yaml; DefaultTuning matches the shipped file.
type Tuning struct {
	IntroDistance    float32
	ApproachDistance float32
	CloseDistance    float32
	TouchDistance    float32

	// AudioRange is the distance at which the proximity factor reaches zero.
	AudioRange float32

	Lines map[Phase]string
}

// DefaultTuning returns the built-in thresholds and narrative text.
func DefaultTuning() Tuning {
	return Tuning{
		IntroDistance:    10,
		ApproachDistance: 6,
		CloseDistance:    4,
		TouchDistance:    1.5,
		AudioRange:       10,
		Lines: map[Phase]string{
			PhaseIntro:          "Something glows between the trees. It has been waiting.",
			PhaseApproaching:    "The orb pulses brighter with every step you take.",
			PhaseVeryClose:      "Reach out. It wants to be touched.",
			PhaseTouch:          "Your hand passes into the light.",
			PhaseTransformation: "The glade dissolves into radiance.",
			PhaseEpilogue:       "You are not who you were when you entered. Walk on.",
		},
	}
}
