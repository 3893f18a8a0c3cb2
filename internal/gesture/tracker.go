// Package gesture turns a single-pointer event stream into drag deltas and a
// release velocity.
package gesture

import (
	"time"
)

// DefaultHorizon is how far back samples count toward the release velocity.
const DefaultHorizon = 100 * time.Millisecond

const maxSamples = 20

type sample struct {
	y  int
	at time.Time
}

// Release summarizes a finished gesture.
type Release struct {
	// Velocity in px/s, screen coordinates (upward is negative).
	Velocity float64
	Press    time.Duration
	Y        int
}

// Tracker follows one pointer from Down to Up.
type Tracker struct {
	Horizon time.Duration

	samples []sample
	downAt  time.Time
	lastY   int
	active  bool
}

// NewTracker returns a tracker using DefaultHorizon.
func NewTracker() *Tracker {
	return &Tracker{Horizon: DefaultHorizon}
}

// Active reports whether a pointer is down.
func (t *Tracker) Active() bool { return t.active }

// Down starts a gesture at y.
func (t *Tracker) Down(y int, at time.Time) {
	t.samples = t.samples[:0]
	t.downAt = at
	t.lastY = y
	t.active = true
	t.add(y, at)
}

// Move records the pointer at y and returns the delta since the previous
// event. It reports false when no gesture is active.
func (t *Tracker) Move(y int, at time.Time) (int, bool) {
	if !t.active {
		return 0, false
	}
	dy := y - t.lastY
	t.lastY = y
	t.add(y, at)
	return dy, true
}

// Up ends the gesture.
func (t *Tracker) Up(y int, at time.Time) (Release, bool) {
	if !t.active {
		return Release{}, false
	}
	if y != t.lastY {
		t.add(y, at)
		t.lastY = y
	}
	r := Release{
		Velocity: t.velocity(at),
		Press:    at.Sub(t.downAt),
		Y:        y,
	}
	t.active = false
	return r, true
}

// Cancel abandons the gesture. The caller settles the wheel without a
// fling.
func (t *Tracker) Cancel() (Release, bool) {
	if !t.active {
		return Release{}, false
	}
	t.active = false
	return Release{Press: time.Since(t.downAt), Y: t.lastY}, true
}

func (t *Tracker) add(y int, at time.Time) {
	if len(t.samples) == maxSamples {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:maxSamples-1]
	}
	t.samples = append(t.samples, sample{y: y, at: at})
}

// velocity fits a line through the samples inside the horizon ending at now.
func (t *Tracker) velocity(now time.Time) float64 {
	horizon := t.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	var recent []sample
	for _, s := range t.samples {
		if now.Sub(s.at) <= horizon {
			recent = append(recent, s)
		}
	}
	if len(recent) < 2 {
		return 0
	}

	origin := recent[0].at
	var n, sumT, sumY, sumTT, sumTY float64
	for _, s := range recent {
		x := s.at.Sub(origin).Seconds()
		y := float64(s.y)
		n++
		sumT += x
		sumY += y
		sumTT += x * x
		sumTY += x * y
	}
	den := n*sumTT - sumT*sumT
	if den == 0 {
		return 0
	}
	return (n*sumTY - sumT*sumY) / den
}
