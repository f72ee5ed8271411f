// Package overlay draws the 2D surface over the 3D scene: narrative text,
// the fade-to-white, the restart prompt, and a small debug corner.
package overlay

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	textFontSize   = 28
	promptFontSize = 22
	debugFontSize  = 18
	debugPadding   = 12
	textFadeInMs   = 300 // text eases in so phase changes do not pop
	promptBlinkHz  = 0.8
)

// Overlay is the player-facing 2D surface. The story machine drives it
// through ShowText/HideText/StartFade/ShowRestartPrompt; Draw renders the
// current state every frame.
type Overlay struct {
	text      string
	visible   bool
	shownAt   time.Time
	fadeAt    time.Time
	fadeDur   time.Duration
	fading    bool
	restart   bool
	showDebug bool
	distance  float32
}

// New returns an empty overlay; showDebug enables the FPS/distance corner.
func New(showDebug bool) *Overlay {
	return &Overlay{showDebug: showDebug}
}

// ShowText displays a narrative line, replacing whatever is showing.
func (o *Overlay) ShowText(text string) {
	o.text = text
	o.visible = true
	o.shownAt = time.Now()
}

// HideText clears the narrative line.
func (o *Overlay) HideText() {
	o.visible = false
}

// StartFade begins the fade-to-white opacity ramp.
func (o *Overlay) StartFade(duration time.Duration) {
	o.fadeAt = time.Now()
	o.fadeDur = duration
	o.fading = true
}

// ShowRestartPrompt puts the terminal restart affordance on screen.
func (o *Overlay) ShowRestartPrompt() { o.restart = true }

// SetDistance feeds the debug readout.
func (o *Overlay) SetDistance(d float32) { o.distance = d }

// ToggleDebug flips the FPS/distance corner.
func (o *Overlay) ToggleDebug() { o.showDebug = !o.showDebug }

// Draw renders the overlay. Call after the 3D scene, outside Mode3D.
func (o *Overlay) Draw(now time.Time) {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	if o.fading {
		t := float32(now.Sub(o.fadeAt)) / float32(o.fadeDur)
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.White, clamp01(t)))
	}

	if o.visible && o.text != "" {
		alpha := clamp01(float32(now.Sub(o.shownAt).Milliseconds()) / textFadeInMs)
		tw := rl.MeasureText(o.text, textFontSize)
		x := (w - tw) / 2
		y := h * 3 / 4
		rl.DrawText(o.text, x+2, y+2, textFontSize, rl.Fade(rl.Black, 0.6*alpha))
		rl.DrawText(o.text, x, y, textFontSize, rl.Fade(rl.RayWhite, alpha))
	}

	if o.restart {
		prompt := "press ENTER to walk again"
		blink := 0.55 + 0.45*math32.Sin(2*math32.Pi*promptBlinkHz*float32(now.UnixMilli())/1000)
		tw := rl.MeasureText(prompt, promptFontSize)
		rl.DrawText(prompt, (w-tw)/2, h/2, promptFontSize, rl.Fade(rl.DarkGray, blink))
	}

	if o.showDebug {
		fps := fmt.Sprintf("%d fps", rl.GetFPS())
		rl.DrawText(fps, w-rl.MeasureText(fps, debugFontSize)-debugPadding, debugPadding, debugFontSize, rl.Green)
		dist := fmt.Sprintf("orb %.1f", o.distance)
		rl.DrawText(dist, w-rl.MeasureText(dist, debugFontSize)-debugPadding, debugPadding+debugFontSize+4, debugFontSize, rl.Green)
	}
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
