package graphics

import (
	"mini-terrain/internal/camera"
	"mini-terrain/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection handles the view and projection matrices for the active camera
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewProjection sizes the projection for a width x height viewport. The far
// plane is wide enough for the continental-scale heights of the terrain.
func NewProjection(width, height int) *Projection {
	p := &Projection{
		AspectRatio: 1,
		NearPlane:   0.1,
		FarPlane:    20000.0,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio, ignoring minimized (zero-sized) windows
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

// Matrix returns the perspective matrix using the shared FOV setting
func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(config.GetFOV()), p.AspectRatio, p.NearPlane, p.FarPlane)
}

// ViewMatrix returns the view matrix for a camera pose
func (p *Projection) ViewMatrix(t camera.Transform) mgl32.Mat4 {
	return t.ViewMatrix()
}
