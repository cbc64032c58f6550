package game

import (
	"time"

	"mini-terrain/internal/camera"
	"mini-terrain/internal/graphics/renderables/terrain"
	"mini-terrain/internal/graphics/renderer"
	standardInput "mini-terrain/internal/input"
	"mini-terrain/internal/profiling"
	"mini-terrain/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Camera   *camera.Camera
	World    *world.World
	Input    *standardInput.InputManager

	Frames           int
	LastFPSCheckTime time.Time
	FPS              int
}

func NewSession(window *glfw.Window, w *world.World, cam *camera.Camera, im *standardInput.InputManager) (*Session, error) {
	width, height := window.GetFramebufferSize()

	r, err := renderer.NewRenderer(width, height, terrain.NewTerrain(w.Chunks))
	if err != nil {
		return nil, err
	}
	r.UpdateViewport(width, height)

	return &Session{
		Window:           window,
		Renderer:         r,
		Camera:           cam,
		World:            w,
		Input:            im,
		LastFPSCheckTime: time.Now(),
	}, nil
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Renderer = nil
	s.World = nil
}

// Update feeds this frame's input to the camera. Returns false once quit
// was requested.
func (s *Session) Update(dt float64) bool {
	defer profiling.Track("session.Update")()

	if s.Input.JustPressed(standardInput.ActionQuit) {
		return false
	}

	// hide the cursor while looking around
	if s.Input.IsActive(standardInput.ActionLook) {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}

	s.Camera.Update(s.Input.Commands(float32(dt)))
	return true
}

func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.Camera.DeriveTransform(), dt)

	s.Frames++
	if since := time.Since(s.LastFPSCheckTime); since >= time.Second {
		s.FPS = int(float64(s.Frames) / since.Seconds())
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}
}

// RefreshRender re-draws the current frame, used while the window is resized
func (s *Session) RefreshRender() {
	width, height := s.Window.GetFramebufferSize()
	s.Renderer.UpdateViewport(width, height)
	s.Render(0)
	s.Window.SwapBuffers()
}
