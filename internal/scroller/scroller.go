// Package scroller produces frame-stepped scroll trajectories: a decelerating
// fling and a fixed-duration ease used to snap onto item boundaries.
package scroller

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Mode is the kind of trajectory in flight.
type Mode int

const (
	ModeNone Mode = iota
	ModeSnap
	ModeFling
)

func (m Mode) String() string {
	switch m {
	case ModeSnap:
		return "snap"
	case ModeFling:
		return "fling"
	default:
		return "none"
	}
}

// DefaultDeceleration is the fling friction in px/s².
const DefaultDeceleration = 2500.0

// frameSlack absorbs the rounding in harmonica.FPS so 250ms at 60fps is 15
// frames, not 16.
const frameSlack = 1e-3

// Scroller advances one frame per ComputeScrollOffset call.
type Scroller struct {
	dt    float64
	decel float64

	mode     Mode
	finished bool
	start    int
	final    int
	curr     int
	frame    int
	frames   int

	proj *harmonica.Projectile
	lo   int
	hi   int
}

// New returns a finished scroller stepping at fps frames per second.
func New(fps int, deceleration float64) *Scroller {
	if fps <= 0 {
		fps = 60
	}
	if deceleration <= 0 {
		deceleration = DefaultDeceleration
	}
	return &Scroller{
		dt:       harmonica.FPS(fps),
		decel:    deceleration,
		finished: true,
	}
}

// FrameDuration is the simulated time per step.
func (s *Scroller) FrameDuration() time.Duration {
	return time.Duration(s.dt * float64(time.Second))
}

func (s *Scroller) IsFinished() bool { return s.finished }
func (s *Scroller) Mode() Mode       { return s.mode }
func (s *Scroller) Current() int     { return s.curr }
func (s *Scroller) Final() int       { return s.final }

func (s *Scroller) framesFor(seconds float64) int {
	n := int(math.Ceil(seconds/s.dt - frameSlack))
	if n < 1 {
		n = 1
	}
	return n
}

// StartScroll eases from start by dy over d. A zero distance or duration
// completes immediately.
func (s *Scroller) StartScroll(start, dy int, d time.Duration) {
	s.mode = ModeSnap
	s.proj = nil
	s.start = start
	s.final = start + dy
	s.frame = 0
	if dy == 0 || d <= 0 {
		s.curr = s.final
		s.finished = true
		return
	}
	s.curr = start
	s.frames = s.framesFor(d.Seconds())
	s.finished = false
}

// Fling starts a constant-deceleration trajectory with the given velocity in
// px/s. It ends at the ballistic target clamped to [lo, hi].
func (s *Scroller) Fling(start int, velocity float64, lo, hi int) {
	s.mode = ModeFling
	s.start = start
	s.frame = 0
	s.lo, s.hi = lo, hi

	travel := velocity * math.Abs(velocity) / (2 * s.decel)
	s.final = clampAdd(start, travel, lo, hi)
	s.curr = clamp(start, lo, hi)

	if s.final == s.curr {
		s.finished = true
		s.proj = nil
		return
	}

	accel := -math.Copysign(s.decel, velocity)
	s.proj = harmonica.NewProjectile(
		s.dt,
		harmonica.Point{Y: float64(start)},
		harmonica.Vector{Y: velocity},
		harmonica.Vector{Y: accel},
	)
	s.frames = s.framesFor(math.Abs(velocity) / s.decel)
	s.finished = false
}

// ForceFinished stops where the trajectory currently is.
func (s *Scroller) ForceFinished() {
	s.finished = true
	s.proj = nil
}

// AbortAnimation jumps to the final position and stops.
func (s *Scroller) AbortAnimation() {
	s.curr = s.final
	s.ForceFinished()
}

// ComputeScrollOffset advances one frame. It reports false once the
// trajectory had already finished before this call.
func (s *Scroller) ComputeScrollOffset() bool {
	if s.finished {
		return false
	}
	s.frame++
	if s.frame >= s.frames {
		s.curr = s.final
		s.finished = true
		s.proj = nil
		return true
	}

	switch s.mode {
	case ModeSnap:
		t := float64(s.frame) / float64(s.frames)
		s.curr = s.start + int(math.Round(EaseOut(t)*float64(s.final-s.start)))
	case ModeFling:
		p := s.proj.Update()
		y := int(math.Round(p.Y))
		// Euler steps may overshoot the analytic stop; never pass it.
		if s.final > s.start {
			y = min(y, s.final)
		} else {
			y = max(y, s.final)
		}
		s.curr = clamp(y, s.lo, s.hi)
		if s.curr == s.final {
			s.finished = true
			s.proj = nil
		}
	}
	return true
}

// EaseOut is a cubic deceleration curve on [0, 1].
func EaseOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampAdd(start int, delta float64, lo, hi int) int {
	target := float64(start) + math.Round(delta)
	if target <= float64(lo) {
		return lo
	}
	if target >= float64(hi) {
		return hi
	}
	return int(target)
}
