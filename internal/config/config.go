package config

import "sync"

// RenderSettings holds render configuration shared by the loop and renderer
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int     // 0 = unlimited
	fov      float32 // vertical, degrees
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 144,
	fov:      60,
}

// GetFPSLimit returns the current frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if fov < 30 {
		fov = 30
	}
	if fov > 120 {
		fov = 120
	}

	globalRenderSettings.fov = fov
}

// Apply pushes the render section of loaded settings into the shared knobs
func Apply(s Settings) {
	SetFPSLimit(s.Render.FPSLimit)
	SetFOV(s.Render.FOV)
}
