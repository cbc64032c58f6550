package game

import (
	"mini-terrain/internal/config"
	"time"
)

// throttledFPS caps the frame rate while the window is unfocused
const throttledFPS = 30

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(throttled bool) {
	target, ok := f.frameTime(throttled)
	if !ok {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// frameTime returns the target frame duration, false when uncapped
func (f *FPSLimiter) frameTime(throttled bool) (time.Duration, bool) {
	limit := config.GetFPSLimit()
	if throttled && (limit <= 0 || limit > throttledFPS) {
		limit = throttledFPS
	}
	if limit <= 0 {
		return 0, false
	}
	return time.Second / time.Duration(limit), true
}
