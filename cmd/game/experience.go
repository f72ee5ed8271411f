package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbwalk/internal/audio"
	"orbwalk/internal/config"
	"orbwalk/internal/logger"
	"orbwalk/internal/overlay"
	"orbwalk/internal/player"
	"orbwalk/internal/story"
	"orbwalk/internal/world"
)

// experience is one complete play-through: the glade, the player, the story
// machine, and the overlay. Restarting throws the whole graph away and
// builds a fresh one; only the window and audio device persist.
type experience struct {
	scene   *world.Scene
	walker  *player.Controller
	machine *story.Machine
	hud     *overlay.Overlay
}

// playerStart is where each walk begins: the glade edge, facing the orb.
var playerStart = rl.NewVector3(0, 0, 18)

func newExperience(cfg config.Config, bus *audio.Bus, log *logger.Logger) *experience {
	scene := world.New(worldOptions(cfg.World))
	hud := overlay.New(cfg.Debug.ShowFPS)
	orb := scene.OrbPosition()
	machine := story.NewMachine(
		tuning(cfg.Story),
		[3]float32{orb.X, orb.Y, orb.Z},
		hud, bus, scene, log,
	)
	walker := player.New(playerStart, scene.HeightAt, scene.Extent())
	return &experience{scene: scene, walker: walker, machine: machine, hud: hud}
}

func (e *experience) update(dt float32, now time.Time) {
	if rl.IsKeyPressed(rl.KeyF1) {
		e.hud.ToggleDebug()
	}
	e.walker.Update(dt)

	pos := e.walker.Position()
	orb := e.scene.OrbPosition()
	distance := story.Distance(
		[3]float32{pos.X, pos.Y, pos.Z},
		[3]float32{orb.X, orb.Y, orb.Z},
	)
	e.hud.SetDistance(distance)
	e.machine.Tick(distance, now)
	e.scene.Update(dt, rl.NewVector3(pos.X, pos.Y-player.EyeHeight, pos.Z))
}

func (e *experience) draw(now time.Time) {
	e.scene.Draw(e.walker.Camera)
	e.hud.Draw(now)
}

func (e *experience) restartRequested() bool {
	return e.machine.AwaitingRestart() && rl.IsKeyPressed(rl.KeyEnter)
}

func (e *experience) cleanup() {
	e.machine.Cleanup()
}

// applyConfig carries a hot-reloaded config into the running experience.
// Only story tuning is live; world shape changes apply on the next restart.
func (e *experience) applyConfig(cfg config.Config) {
	e.machine.SetTuning(tuning(cfg.Story))
}

func worldOptions(w config.WorldConfig) world.Options {
	return world.Options{
		Seed:           w.Seed,
		Extent:         w.Extent,
		HeightScale:    w.HeightScale,
		Trees:          w.Trees,
		Rocks:          w.Rocks,
		Flowers:        w.Flowers,
		ClearingRadius: w.ClearingRadius,
		OrbOffset:      rl.NewVector3(w.Orb.X, w.Orb.Y, w.Orb.Z),
		OrbRadius:      w.Orb.Radius,
	}
}

// tuning maps the config's story section onto the machine's tuning, keeping
// the built-in narrative lines wherever the file leaves one empty.
func tuning(s config.StoryConfig) story.Tuning {
	t := story.DefaultTuning()
	if s.IntroDistance > 0 {
		t.IntroDistance = s.IntroDistance
	}
	if s.ApproachDistance > 0 {
		t.ApproachDistance = s.ApproachDistance
	}
	if s.CloseDistance > 0 {
		t.CloseDistance = s.CloseDistance
	}
	if s.TouchDistance > 0 {
		t.TouchDistance = s.TouchDistance
	}
	if s.AudioRange > 0 {
		t.AudioRange = s.AudioRange
	}
	for phase, text := range map[story.Phase]string{
		story.PhaseIntro:          s.Intro,
		story.PhaseApproaching:    s.Approaching,
		story.PhaseVeryClose:      s.VeryClose,
		story.PhaseTouch:          s.Touch,
		story.PhaseTransformation: s.Transformation,
		story.PhaseEpilogue:       s.Epilogue,
	} {
		if text != "" {
			t.Lines[phase] = text
		}
	}
	return t
}
