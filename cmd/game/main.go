package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbwalk/internal/audio"
	"orbwalk/internal/config"
	"orbwalk/internal/graphics"
	"orbwalk/internal/logger"
)

func main() {
	cfg, _ := config.Load(config.Path)
	log := logger.New()
	log.Log("session start")

	updates, stopWatch, err := config.Watch(config.Path)
	if err != nil {
		log.Log("config watch unavailable: " + err.Error())
	}

	var bus *audio.Bus
	var exp *experience

	update := func() {
		if bus == nil {
			// Deferred past InitWindow so the audio device opens alongside it.
			bus = audio.NewBus(cfg.Audio.Enabled)
			exp = newExperience(cfg, bus, log)
		}

		select {
		case c, ok := <-updates:
			if ok {
				cfg = c
				exp.applyConfig(c)
				log.Log("config reloaded")
			}
		default:
		}

		dt := rl.GetFrameTime()
		exp.update(dt, time.Now())
		bus.Update()

		if exp.restartRequested() {
			log.Log("restart")
			exp.cleanup()
			if cfg.World.ReseedOnRestart {
				cfg.World.Seed = 0
			}
			exp = newExperience(cfg, bus, log)
		}
	}
	draw := func() {
		if exp != nil {
			exp.draw(time.Now())
		}
	}

	graphics.Run(graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.Window.TargetFPS,
	}, update, draw)

	if bus != nil {
		bus.Close()
	}
	if stopWatch != nil {
		stopWatch()
	}
	log.Log("session end")
}
