package loop

import "time"

// Meter measures frames per second over windows of at least one second.
type Meter struct {
	elapsed time.Duration
	frames  int
}

// Tick records a frame that took dt. Once a second or more has accumulated,
// Tick returns the rate over that window with ok true and starts a new window.
func (m *Meter) Tick(dt time.Duration) (fps float64, ok bool) {
	m.elapsed += dt
	m.frames++
	if m.elapsed < time.Second {
		return 0, false
	}
	fps = float64(m.frames) / m.elapsed.Seconds()
	m.elapsed, m.frames = 0, 0
	return fps, true
}
