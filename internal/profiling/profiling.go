package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU section timer.

// Section is the accumulated time of one named section in the current frame.
type Section struct {
	Name  string
	Total time.Duration
	Calls int
}

var (
	mu       sync.Mutex
	sections = make(map[string]*Section)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.Build")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s, ok := sections[name]
		if !ok {
			s = &Section{Name: name}
			sections[name] = s
		}
		s.Total += d
		s.Calls++
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(sections)
	mu.Unlock()
}

// Snapshot returns the current sections, longest first.
func Snapshot() []Section {
	mu.Lock()
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, *s)
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n longest sections of the current frame.
// Example: "terrain.Render:4.2ms, camera.Update:0.1ms(x2)"
func TopN(n int) string {
	list := Snapshot()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, s := range list[:n] {
		p := s.Name + ":" + formatMs(s.Total)
		if s.Calls > 1 {
			p += "(x" + strconv.Itoa(s.Calls) + ")"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(strconv.FormatFloat(ms, 'f', 1, 64), ".0") + "ms"
}
