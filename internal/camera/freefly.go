package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ReleaseDamping scales residual rotational velocity every frame the look
	// input is not held.
	ReleaseDamping = 0.2

	maxPitch = math.Pi / 2
)

// FreeFly is a first-person yaw/pitch camera. Angles are radians; yaw 0
// looks down -Z.
type FreeFly struct {
	Position mgl32.Vec3
	Yaw      float32 // [0, 2π)
	Pitch    float32 // [-π/2, π/2]

	Sensitivity      float32 // radians per pointer unit
	Speed            float32 // units per second
	SprintMultiplier float32
	// Smoothing blends pointer input into Velocity: 0 applies deltas as-is,
	// values towards 1 smooth more.
	Smoothing float32

	Velocity  mgl32.Vec2 // smoothed pointer delta
	Locked    bool       // look input held
	Sprinting bool

	rotated bool
}

// NewFreeFly returns a free-fly camera at position with default tuning.
func NewFreeFly(position mgl32.Vec3) *FreeFly {
	return &FreeFly{
		Position:         position,
		Sensitivity:      0.002,
		Speed:            100,
		SprintMultiplier: 3,
	}
}

func (f *FreeFly) mode() {}

// CurrentSpeed is the movement speed including the sprint multiplier.
func (f *FreeFly) CurrentSpeed() float32 {
	if f.Sprinting {
		return f.Speed * f.SprintMultiplier
	}
	return f.Speed
}

func (f *FreeFly) move(dir mgl32.Vec3, dt float32) {
	f.Position = f.Position.Add(dir.Mul(f.CurrentSpeed() * dt))
}

func (f *FreeFly) MoveForward(dt float32) {
	fwd, _ := horizontal(f.Yaw)
	f.move(fwd, dt)
}

func (f *FreeFly) MoveBack(dt float32) {
	fwd, _ := horizontal(f.Yaw)
	f.move(fwd.Mul(-1), dt)
}

func (f *FreeFly) MoveLeft(dt float32) {
	_, left := horizontal(f.Yaw)
	f.move(left, dt)
}

func (f *FreeFly) MoveRight(dt float32) {
	_, left := horizontal(f.Yaw)
	f.move(left.Mul(-1), dt)
}

// MoveUp and MoveDown ignore orientation.
func (f *FreeFly) MoveUp(dt float32) {
	f.Position[1] += f.CurrentSpeed() * dt
}

func (f *FreeFly) MoveDown(dt float32) {
	f.Position[1] -= f.CurrentSpeed() * dt
}

// Rotate turns the camera by a pointer delta. Pitch is clamped to ±π/2 and
// yaw wrapped into [0, 2π).
func (f *FreeFly) Rotate(delta mgl32.Vec2) {
	f.Velocity = f.Velocity.Mul(f.Smoothing).Add(delta.Mul(1 - f.Smoothing))
	f.turn(f.Velocity)
	f.rotated = true
}

func (f *FreeFly) turn(v mgl32.Vec2) {
	f.Yaw = wrapAngle(f.Yaw - v.X()*f.Sensitivity)
	f.Pitch = mgl32.Clamp(f.Pitch-v.Y()*f.Sensitivity, -maxPitch, maxPitch)
}

func (f *FreeFly) ApplyCommand(cmd Command) {
	switch cmd.Kind {
	case CommandMoveForward:
		f.MoveForward(cmd.DT)
	case CommandMoveBack:
		f.MoveBack(cmd.DT)
	case CommandMoveLeft:
		f.MoveLeft(cmd.DT)
	case CommandMoveRight:
		f.MoveRight(cmd.DT)
	case CommandMoveUp:
		f.MoveUp(cmd.DT)
	case CommandMoveDown:
		f.MoveDown(cmd.DT)
	case CommandRotate:
		// pointer motion without the look input held is dropped
		if f.Locked {
			f.Rotate(cmd.Delta)
		}
	case CommandSetSprint:
		f.Sprinting = cmd.On
	case CommandSetLook:
		f.Locked = cmd.On
	}
}

// EndFrame relaxes the smoothed velocity when the look input produced no
// motion and lets it coast out with ReleaseDamping once released.
func (f *FreeFly) EndFrame() {
	switch {
	case f.Locked && !f.rotated:
		f.Rotate(mgl32.Vec2{})
	case !f.Locked:
		f.Velocity = f.Velocity.Mul(ReleaseDamping)
		f.turn(f.Velocity)
	}
	f.rotated = false
}

// DeriveTransform applies yaw about world up first, then pitch about the
// camera's own X axis, so no roll builds up.
func (f *FreeFly) DeriveTransform() Transform {
	yaw := mgl32.QuatRotate(f.Yaw, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(f.Pitch, mgl32.Vec3{1, 0, 0})
	return Transform{
		Position: f.Position,
		Rotation: yaw.Mul(pitch),
	}
}
