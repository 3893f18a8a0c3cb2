// Package engine owns the wheel's scroll offset. It turns drags, releases and
// programmatic selections into trajectories, advances them one frame per Tick
// and commits the selection when they settle.
package engine

import (
	"log/slog"
	"math"
	"time"

	"wheelview/internal/content"
	"wheelview/internal/dispatch"
	"wheelview/internal/geometry"
	"wheelview/internal/logger"
	"wheelview/internal/scroller"
)

// State is the coarse scroll state reported to listeners.
type State = dispatch.ScrollState

const (
	Idle     = dispatch.Idle
	Dragging = dispatch.Dragging
	Settling = dispatch.Settling
)

// Phase refines Settling.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseFlinging
	PhaseSnapping
)

func (p Phase) String() string {
	switch p {
	case PhaseFlinging:
		return "flinging"
	case PhaseSnapping:
		return "snapping"
	default:
		return "none"
	}
}

const (
	DefaultScrollDuration   = 250 * time.Millisecond
	DefaultClickConfirm     = 120 * time.Millisecond
	DefaultMinFlingVelocity = 50.0
	DefaultMaxFlingVelocity = 8000.0
	DefaultFPS              = 60
)

// Options configure a new Engine. Zero values take the defaults above.
// Selected is the initial selection, clamped once a count is known.
type Options struct {
	ItemHeight       int
	Count            int
	Cyclic           bool
	FPS              int
	Deceleration     float64
	MinFlingVelocity float64
	MaxFlingVelocity float64
	ScrollDuration   time.Duration
	ClickConfirm     time.Duration
	Selected         int
	Log              *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.MinFlingVelocity <= 0 {
		o.MinFlingVelocity = DefaultMinFlingVelocity
	}
	if o.MaxFlingVelocity <= 0 {
		o.MaxFlingVelocity = DefaultMaxFlingVelocity
	}
	if o.ScrollDuration <= 0 {
		o.ScrollDuration = DefaultScrollDuration
	}
	if o.ClickConfirm <= 0 {
		o.ClickConfirm = DefaultClickConfirm
	}
	if o.ItemHeight < 0 {
		o.ItemHeight = 0
	}
	if o.Count < 0 {
		o.Count = 0
	}
	if o.Selected < 0 {
		o.Selected = 0
	}
	return o
}

// Engine is the scroll state machine. It is not safe for concurrent use; the
// host drives it from a single loop.
type Engine struct {
	opts   Options
	sc     *scroller.Scroller
	events dispatch.Events
	log    *slog.Logger

	offset   int
	selected int
	current  int
	state    State
	phase    Phase
	min, max int
}

// New returns an idle engine at offset 0. A nil events sink discards events.
func New(opts Options, events dispatch.Events) *Engine {
	opts = opts.withDefaults()
	if events == nil {
		events = dispatch.Tee()
	}
	e := &Engine{
		opts:   opts,
		sc:     scroller.New(opts.FPS, opts.Deceleration),
		events: events,
		log:    logger.Or(opts.Log),
	}
	e.selected = opts.Selected
	if e.opts.Count > 0 {
		e.selected = min(e.selected, e.opts.Count-1)
	}
	e.current = e.selected
	e.updateLimits()
	e.offset = e.clampOffset(e.selected * e.opts.ItemHeight)
	return e
}

func (e *Engine) Offset() int          { return e.offset }
func (e *Engine) SelectedIndex() int   { return e.selected }
func (e *Engine) CurrentIndex() int    { return e.current }
func (e *Engine) State() State         { return e.state }
func (e *Engine) Phase() Phase         { return e.phase }
func (e *Engine) ItemHeight() int      { return e.opts.ItemHeight }
func (e *Engine) Count() int           { return e.opts.Count }
func (e *Engine) Cyclic() bool         { return e.opts.Cyclic }
func (e *Engine) Limits() (lo, hi int) { return e.min, e.max }

func (e *Engine) FrameDuration() time.Duration  { return e.sc.FrameDuration() }
func (e *Engine) ScrollDuration() time.Duration { return e.opts.ScrollDuration }

// IsAnimating reports whether Tick has work to do.
func (e *Engine) IsAnimating() bool { return e.state == Settling }

func (e *Engine) usable() bool {
	return e.opts.Count > 0 && e.opts.ItemHeight > 0
}

func (e *Engine) updateLimits() {
	e.min, e.max = geometry.ScrollLimits(e.opts.Count, e.opts.ItemHeight, e.opts.Cyclic)
}

func (e *Engine) clampOffset(v int) int {
	if e.opts.Cyclic {
		return v
	}
	return min(max(v, e.min), e.max)
}

// Index maps an offset to the item nearest the center line.
func (e *Engine) Index(offset int) int {
	if !e.usable() {
		return 0
	}
	h := e.opts.ItemHeight
	var idx int
	if offset >= 0 {
		idx = (offset + h/2) / h
	} else {
		idx = (offset - h/2) / h
	}
	if e.opts.Cyclic {
		return content.Wrap(idx, e.opts.Count)
	}
	return content.Clamp(idx, e.opts.Count)
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	if s != Settling {
		e.phase = PhaseNone
	}
	e.events.StateChanged(s)
}

// moveTo changes the offset and reports the offset and item changes.
func (e *Engine) moveTo(offset int) {
	offset = e.clampOffset(offset)
	if offset == e.offset {
		return
	}
	e.offset = offset
	e.events.ScrollOffsetChanged(offset)
	if idx := e.Index(offset); idx != e.current {
		old := e.current
		e.current = idx
		e.events.ItemChanged(old, idx)
	}
}

// Press hard-stops any trajectory in flight. The state is left for the
// following drag or release to change.
func (e *Engine) Press() {
	e.sc.ForceFinished()
}

// DragDelta applies a pointer move of dy screen pixels. Dragging up (dy < 0)
// increases the offset.
func (e *Engine) DragDelta(dy int) {
	if !e.usable() {
		return
	}
	if !e.sc.IsFinished() {
		e.sc.ForceFinished()
	}
	e.setState(Dragging)
	e.moveTo(e.offset - dy)
}

// Release ends a drag. velocity is the pointer velocity in screen px/s,
// press is the time since the pointer went down, and releaseY/centerY locate
// the pointer relative to the wheel center for taps. It reports whether
// frames must be scheduled.
func (e *Engine) Release(velocity float64, press time.Duration, releaseY, centerY int) bool {
	if !e.usable() {
		return false
	}
	e.sc.ForceFinished()

	v := math.Max(-e.opts.MaxFlingVelocity, math.Min(velocity, e.opts.MaxFlingVelocity))
	if math.Abs(v) > e.opts.MinFlingVelocity {
		e.setState(Settling)
		e.phase = PhaseFlinging
		e.sc.Fling(e.offset, -v, e.min, e.max)
		e.log.Debug("fling", "offset", e.offset, "velocity", -v, "target", e.sc.Final())
		return true
	}

	click := 0
	if press <= e.opts.ClickConfirm {
		click = releaseY - centerY
	}
	e.setState(Settling)
	e.phase = PhaseSnapping
	e.snapFrom(click, e.opts.ScrollDuration)
	return true
}

// Settle snaps to the nearest item without a fling or tap adjustment. It
// is used when a gesture is cancelled.
func (e *Engine) Settle() bool {
	if !e.usable() {
		return false
	}
	e.sc.ForceFinished()
	e.setState(Settling)
	e.phase = PhaseSnapping
	e.snapFrom(0, e.opts.ScrollDuration)
	return true
}

// snapFrom starts a snap to the item boundary nearest offset+extra.
func (e *Engine) snapFrom(extra int, d time.Duration) {
	h := e.opts.ItemHeight
	dist := extra + SnapDistance((e.offset+extra)%h, h)
	target := e.clampOffset(e.offset + dist)
	e.sc.StartScroll(e.offset, target-e.offset, d)
}

// SnapDistance returns the shortest distance that cancels remainder. A
// remainder past half an item continues a full item in its own direction.
func SnapDistance(remainder, itemHeight int) int {
	if abs(remainder) > itemHeight/2 {
		if remainder < 0 {
			return -itemHeight - remainder
		}
		return itemHeight - remainder
	}
	return -remainder
}

// Tick advances one frame and reports whether another is needed. Once idle
// it does nothing.
func (e *Engine) Tick() bool {
	if e.state != Settling {
		return false
	}
	if e.sc.ComputeScrollOffset() {
		e.moveTo(e.sc.Current())
		return true
	}
	if e.phase == PhaseFlinging && e.usable() {
		e.phase = PhaseSnapping
		e.snapFrom(0, e.opts.ScrollDuration)
		if !e.sc.IsFinished() {
			return true
		}
		e.moveTo(e.sc.Current())
	}
	e.settle()
	return false
}

func (e *Engine) settle() {
	e.state = Idle
	e.phase = PhaseNone
	e.selected = e.current
	e.events.Selected(e.selected)
	e.events.StateChanged(Idle)
}

// SetSelected moves to position. It reports whether frames must be
// scheduled. Positions outside [0, Count) are ignored.
func (e *Engine) SetSelected(position int, animate bool, d time.Duration) bool {
	if !e.usable() {
		return false
	}
	if position < 0 || position >= e.opts.Count {
		e.log.Debug("selection out of range ignored", "position", position, "count", e.opts.Count)
		return false
	}
	target := position * e.opts.ItemHeight
	e.sc.AbortAnimation()

	if animate {
		if d <= 0 {
			d = e.opts.ScrollDuration
		}
		e.setState(Settling)
		e.phase = PhaseSnapping
		e.sc.StartScroll(e.offset, target-e.offset, d)
		return true
	}

	e.moveTo(target)
	e.current = position
	e.selected = position
	e.events.Selected(position)
	e.setState(Idle)
	return false
}

// ScrollBy animates delta items away from the item the wheel is on or
// heading to. Cyclic wheels step across the seam instead of rewinding;
// bounded wheels stop at the ends. It reports whether frames must be
// scheduled.
func (e *Engine) ScrollBy(delta int, d time.Duration) bool {
	if !e.usable() || delta == 0 {
		return false
	}
	h := e.opts.ItemHeight
	base := e.offset
	if e.state == Settling {
		base = e.sc.Final()
	}
	base += SnapDistance(base%h, h)
	target := e.clampOffset(base + delta*h)
	if target == e.offset && e.state != Settling {
		return false
	}
	if d <= 0 {
		d = e.opts.ScrollDuration
	}
	e.sc.ForceFinished()
	e.setState(Settling)
	e.phase = PhaseSnapping
	e.sc.StartScroll(e.offset, target-e.offset, d)
	return true
}

// ForceFinish hard-stops any trajectory and returns to Idle without
// committing a selection.
func (e *Engine) ForceFinish() {
	e.sc.ForceFinished()
	e.setState(Idle)
}

// SetItemHeight changes the item height and re-anchors on the selection.
func (e *Engine) SetItemHeight(h int) {
	if h < 0 {
		h = 0
	}
	e.opts.ItemHeight = h
	e.Reset()
}

// SetCyclic switches between bounded and cyclic scrolling.
func (e *Engine) SetCyclic(cyclic bool) {
	if e.opts.Cyclic == cyclic {
		return
	}
	e.opts.Cyclic = cyclic
	e.Reset()
}

// SetCount replaces the item count. With resetSelected the selection goes
// back to 0, otherwise it is clamped to the new range.
func (e *Engine) SetCount(n int, resetSelected bool) {
	if n < 0 {
		n = 0
	}
	e.opts.Count = n
	switch {
	case resetSelected || n == 0:
		e.selected = 0
	case e.selected >= n:
		e.selected = n - 1
	}
	e.Reset()
}

// Reset stops motion, recomputes limits and puts the offset on the selected
// item. No events fire beyond a state change back to Idle.
func (e *Engine) Reset() {
	e.sc.ForceFinished()
	e.updateLimits()
	e.offset = e.clampOffset(e.selected * e.opts.ItemHeight)
	e.current = e.selected
	e.setState(Idle)
}

// SetFlingVelocity overrides the fling thresholds in px/s.
func (e *Engine) SetFlingVelocity(minV, maxV float64) {
	if minV > 0 {
		e.opts.MinFlingVelocity = minV
	}
	if maxV > 0 {
		e.opts.MaxFlingVelocity = maxV
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
