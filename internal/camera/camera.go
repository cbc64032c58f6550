// Package camera turns per-frame movement and rotation commands into a camera
// pose. A Camera wraps one Mode, either FreeFly or Orbit, chosen at creation.
package camera

// Mode is the closed set of camera behaviours. Callers drive every mode the
// same way and never need to know which one is active.
type Mode interface {
	ApplyCommand(cmd Command)
	// EndFrame runs once after the frame's commands were applied.
	EndFrame()
	DeriveTransform() Transform
	mode()
}

// Camera is the single active camera of a session.
type Camera struct {
	mode Mode
}

// New creates a camera running the given mode.
func New(m Mode) *Camera {
	return &Camera{mode: m}
}

// Mode returns the active mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// ApplyCommand forwards one command to the active mode.
func (c *Camera) ApplyCommand(cmd Command) {
	c.mode.ApplyCommand(cmd)
}

// Update applies a frame's commands in order and closes the frame.
func (c *Camera) Update(cmds []Command) {
	for _, cmd := range cmds {
		c.mode.ApplyCommand(cmd)
	}
	c.mode.EndFrame()
}

// DeriveTransform returns the current pose.
func (c *Camera) DeriveTransform() Transform {
	return c.mode.DeriveTransform()
}
