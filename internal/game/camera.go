package game

import (
	"fmt"

	"mini-terrain/internal/camera"
	"mini-terrain/internal/config"
	"mini-terrain/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// NewCamera builds the configured camera mode over w. The orbit camera is
// focused on the terrain surface at the centre of the grid.
func NewCamera(cfg config.Camera, w *world.World) (*camera.Camera, error) {
	switch cfg.Mode {
	case config.CameraModeFreeFly:
		f := camera.NewFreeFly(mgl32.Vec3(cfg.Position))
		f.Sensitivity = cfg.Sensitivity
		f.Speed = cfg.Speed
		f.SprintMultiplier = cfg.SprintMultiplier
		f.Smoothing = cfg.Smoothing
		return camera.New(f), nil
	case config.CameraModeOrbit:
		o := camera.NewOrbit(Center(w), cfg.Zoom)
		o.Sensitivity = cfg.Sensitivity
		o.Speed = cfg.Speed
		o.SprintMultiplier = cfg.SprintMultiplier
		return camera.New(o), nil
	default:
		return nil, fmt.Errorf("unknown camera mode %q", cfg.Mode)
	}
}

// Center returns the terrain surface point at the middle of the grid.
func Center(w *world.World) mgl32.Vec3 {
	half := w.Extent() / 2
	step := w.ChunkSize - 1
	mid := int(half)
	coord := world.ChunkCoord{X: mid / step, Z: mid / step}
	c := w.Chunk(coord)
	if c == nil {
		return mgl32.Vec3{half, 0, half}
	}
	i := mid - coord.X*step
	j := mid - coord.Z*step
	return c.Origin.Add(mgl32.Vec3{float32(i), c.Mesh.HeightAt(i, j), float32(j)})
}
