package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinZoom = 0
	MaxZoom = 100
)

// Orbit circles a focus point. Height above the focus equals the distance,
// so zooming raises and pulls the camera back together.
type Orbit struct {
	Focus    mgl32.Vec3
	Angle    float32 // [0, 2π)
	Distance float32 // [MinZoom, MaxZoom]

	Sensitivity      float32
	Speed            float32
	SprintMultiplier float32
	Sprinting        bool
}

// NewOrbit returns an orbit camera around focus with default tuning.
func NewOrbit(focus mgl32.Vec3, distance float32) *Orbit {
	return &Orbit{
		Focus:            focus,
		Distance:         mgl32.Clamp(distance, MinZoom, MaxZoom),
		Sensitivity:      0.002,
		Speed:            100,
		SprintMultiplier: 3,
	}
}

func (o *Orbit) mode() {}

func (o *Orbit) currentSpeed() float32 {
	if o.Sprinting {
		return o.Speed * o.SprintMultiplier
	}
	return o.Speed
}

// heading is the free-fly style yaw the orbit camera looks along: the camera
// sits behind the focus at (-sinθ, -cosθ), so it faces θ+π.
func (o *Orbit) heading() float32 {
	return o.Angle + math.Pi
}

// Pan moves the focus in the ground plane. dir is (forward, left) in units of
// speed*dt, relative to where the camera faces.
func (o *Orbit) Pan(dir mgl32.Vec2, dt float32) {
	fwd, left := horizontal(o.heading())
	step := fwd.Mul(dir.X()).Add(left.Mul(dir.Y())).Mul(o.currentSpeed() * dt)
	o.Focus = o.Focus.Add(step)
}

// Orbit turns the camera around the focus by a horizontal pointer delta.
func (o *Orbit) Orbit(dx float32) {
	o.Angle = wrapAngle(o.Angle + dx*o.Sensitivity)
}

// ZoomIn grows the orbit distance by multiplier, ZoomOut shrinks it; both
// clamp to [MinZoom, MaxZoom].
func (o *Orbit) ZoomIn(multiplier float32) {
	o.Distance = mgl32.Clamp(o.Distance+multiplier, MinZoom, MaxZoom)
}

func (o *Orbit) ZoomOut(multiplier float32) {
	o.Distance = mgl32.Clamp(o.Distance-multiplier, MinZoom, MaxZoom)
}

func (o *Orbit) ApplyCommand(cmd Command) {
	switch cmd.Kind {
	case CommandMoveForward:
		o.Pan(mgl32.Vec2{1, 0}, cmd.DT)
	case CommandMoveBack:
		o.Pan(mgl32.Vec2{-1, 0}, cmd.DT)
	case CommandMoveLeft:
		o.Pan(mgl32.Vec2{0, 1}, cmd.DT)
	case CommandMoveRight:
		o.Pan(mgl32.Vec2{0, -1}, cmd.DT)
	case CommandRotate:
		o.Orbit(cmd.Delta.X())
	case CommandZoomIn:
		o.ZoomIn(cmd.Amount)
	case CommandZoomOut:
		o.ZoomOut(cmd.Amount)
	case CommandSetSprint:
		o.Sprinting = cmd.On
	}
}

func (o *Orbit) EndFrame() {}

// Position returns the camera position: focus + (-sinθ·r, r, -cosθ·r).
func (o *Orbit) Position() mgl32.Vec3 {
	s := float32(math.Sin(float64(o.Angle)))
	c := float32(math.Cos(float64(o.Angle)))
	r := o.Distance
	return o.Focus.Add(mgl32.Vec3{-s * r, r, -c * r})
}

// DeriveTransform looks from Position at the focus with +Y up. At zero
// distance the camera sits on the focus and keeps the 45° downward view the
// look-at converges to.
func (o *Orbit) DeriveTransform() Transform {
	eye := o.Position()
	if o.Distance <= 0 {
		yaw := mgl32.QuatRotate(o.heading(), mgl32.Vec3{0, 1, 0})
		pitch := mgl32.QuatRotate(-math.Pi/4, mgl32.Vec3{1, 0, 0})
		return Transform{Position: eye, Rotation: yaw.Mul(pitch)}
	}
	// LookAtV yields the view rotation; the camera's own rotation is its inverse
	view := mgl32.LookAtV(mgl32.Vec3{}, o.Focus.Sub(eye), mgl32.Vec3{0, 1, 0})
	return Transform{
		Position: eye,
		Rotation: mgl32.Mat4ToQuat(view).Inverse().Normalize(),
	}
}
