// Package config loads the experience configuration from
// config/experience.yaml. A missing or unreadable file falls back to the
// built-in defaults so the game always starts.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Path is the config file location, relative to the process working
// directory (project root when run via go run ./cmd/game).
const Path = "config/experience.yaml"

type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Story  StoryConfig  `yaml:"story"`
	Audio  AudioConfig  `yaml:"audio"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
}

type WorldConfig struct {
	Seed            int64     `yaml:"seed"` // 0 = time-based
	Extent          float32   `yaml:"extent"`
	HeightScale     float32   `yaml:"height_scale"`
	Trees           int       `yaml:"trees"`
	Rocks           int       `yaml:"rocks"`
	Flowers         int       `yaml:"flowers"`
	ClearingRadius  float32   `yaml:"clearing_radius"`
	ReseedOnRestart bool      `yaml:"reseed_on_restart"`
	Orb             OrbConfig `yaml:"orb"`
}

type OrbConfig struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Z      float32 `yaml:"z"`
	Radius float32 `yaml:"radius"`
}

// StoryConfig holds the distance thresholds and narrative lines. Empty lines
// fall back to the built-in text at mapping time.
type StoryConfig struct {
	IntroDistance    float32 `yaml:"intro_distance"`
	ApproachDistance float32 `yaml:"approach_distance"`
	CloseDistance    float32 `yaml:"close_distance"`
	TouchDistance    float32 `yaml:"touch_distance"`
	AudioRange       float32 `yaml:"audio_range"`

	Intro          string `yaml:"intro"`
	Approaching    string `yaml:"approaching"`
	VeryClose      string `yaml:"very_close"`
	Touch          string `yaml:"touch"`
	Transformation string `yaml:"transformation"`
	Epilogue       string `yaml:"epilogue"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type DebugConfig struct {
	ShowFPS bool `yaml:"show_fps"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "orbwalk",
			TargetFPS: 60,
		},
		World: WorldConfig{
			Extent:         24,
			HeightScale:    0.8,
			Trees:          28,
			Rocks:          14,
			Flowers:        60,
			ClearingRadius: 4,
			Orb:            OrbConfig{X: 0, Y: 1.2, Z: 0, Radius: 0.5},
		},
		Story: StoryConfig{
			IntroDistance:    10,
			ApproachDistance: 6,
			CloseDistance:    4,
			TouchDistance:    1.5,
			AudioRange:       10,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads the config at path. Missing or invalid files return Default()
// without error; partial files override only the fields they set.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}
