package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a camera pose in world space. Camera-space forward is -Z.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Matrix returns the camera's model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the inverse of Matrix, suitable as a view matrix.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	inv := t.Rotation.Inverse()
	p := inv.Rotate(t.Position)
	return mgl32.Translate3D(-p.X(), -p.Y(), -p.Z()).Mul4(inv.Mat4())
}

// Forward returns the world-space viewing direction.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

const twoPi = 2 * math.Pi

// wrapAngle maps a into [0, 2π). Per-frame deltas are small, so one
// correction normally suffices; larger jumps fall back to a modulo.
func wrapAngle(a float32) float32 {
	if a < 0 {
		a += twoPi
	} else if a >= twoPi {
		a -= twoPi
	}
	if a < 0 || a >= twoPi {
		a = float32(math.Mod(float64(a), twoPi))
		if a < 0 {
			a += twoPi
		}
	}
	// float32 rounding can land a tiny negative exactly on 2π
	if a >= twoPi {
		a = 0
	}
	return a
}

// horizontal returns the forward and left ground-plane directions for a
// heading where forward is (-sin, -cos). Left is forward turned 90° about +Y.
func horizontal(heading float32) (forward, left mgl32.Vec3) {
	s := float32(math.Sin(float64(heading)))
	c := float32(math.Cos(float64(heading)))
	return mgl32.Vec3{-s, 0, -c}, mgl32.Vec3{-c, 0, s}
}
