package game

import (
	"fmt"
	"log"
	"time"

	standardInput "mini-terrain/internal/input"
	"mini-terrain/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame gets logged
const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	session      *Session

	title      string
	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager, s *Session, title string) *App {
	return &App{
		window:       window,
		inputManager: im,
		session:      s,
		title:        title,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

func (a *App) Run() {
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.RefreshRender()
	})
	defer a.session.Cleanup()

	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	if !a.session.Update(dt) {
		a.window.SetShouldClose(true)
	}
	lastFPS := a.session.FPS
	a.session.Render(dt)
	if a.session.FPS != lastFPS {
		a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.title, a.session.FPS))
	}

	a.window.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	focused := a.window.GetAttrib(glfw.Focused) == glfw.True
	a.fpsLimiter.Wait(!focused)
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.RefreshRender()
}
