package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CameraModeFreeFly = "free_fly"
	CameraModeOrbit   = "orbit"
)

type Settings struct {
	Window Window `yaml:"window"`
	World  World  `yaml:"world"`
	Camera Camera `yaml:"camera"`
	Render Render `yaml:"render"`
	Input  Input  `yaml:"input"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type World struct {
	SizeChunks int `yaml:"size_chunks"`
	ChunkSize  int `yaml:"chunk_size"`
	// Seed is optional; nil means draw a random seed at startup.
	Seed    *int64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

type Camera struct {
	Mode             string     `yaml:"mode"`
	Sensitivity      float32    `yaml:"sensitivity"`
	Speed            float32    `yaml:"speed"`
	SprintMultiplier float32    `yaml:"sprint_multiplier"`
	Smoothing        float32    `yaml:"smoothing"`
	Zoom             float32    `yaml:"zoom"`
	Position         [3]float32 `yaml:"position"`
}

// Input overrides default bindings: action name -> key or mouse button
// names, e.g. move_forward: [w, up].
type Input struct {
	Bindings map[string][]string `yaml:"bindings"`
}

type Render struct {
	FPSLimit int     `yaml:"fps_limit"`
	FOV      float32 `yaml:"fov"`
}

// Defaults returns the built-in configuration.
func Defaults() Settings {
	return Settings{
		Window: Window{Width: 1920, Height: 1080, Title: "mini-terrain"},
		World:  World{SizeChunks: 8, ChunkSize: 512},
		Camera: Camera{
			Mode:             CameraModeFreeFly,
			Sensitivity:      0.002,
			Speed:            100,
			SprintMultiplier: 3,
			Zoom:             50,
			Position:         [3]float32{0, 150, 0},
		},
		Render: Render{FPSLimit: 144, FOV: 60},
	}
}

// Load reads a YAML settings file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the world builder or camera cannot use.
func (s Settings) Validate() error {
	var errs []error
	if s.World.ChunkSize < 2 {
		errs = append(errs, fmt.Errorf("world.chunk_size %d: need at least 2", s.World.ChunkSize))
	}
	if s.World.SizeChunks < 1 {
		errs = append(errs, fmt.Errorf("world.size_chunks %d: need at least 1", s.World.SizeChunks))
	}
	if s.World.Workers < 0 {
		errs = append(errs, fmt.Errorf("world.workers %d: must not be negative", s.World.Workers))
	}
	switch s.Camera.Mode {
	case CameraModeFreeFly, CameraModeOrbit:
	default:
		errs = append(errs, fmt.Errorf("camera.mode %q: want %q or %q", s.Camera.Mode, CameraModeFreeFly, CameraModeOrbit))
	}
	if s.Camera.Zoom < 0 || s.Camera.Zoom > 100 {
		errs = append(errs, fmt.Errorf("camera.zoom %v: want [0, 100]", s.Camera.Zoom))
	}
	if s.Camera.Smoothing < 0 || s.Camera.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("camera.smoothing %v: want [0, 1)", s.Camera.Smoothing))
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window %dx%d: must be positive", s.Window.Width, s.Window.Height))
	}
	return errors.Join(errs...)
}
