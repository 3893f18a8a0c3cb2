// Package dispatch fans wheel events out to registered listeners and the
// sound hook.
package dispatch

import (
	"fmt"

	"wheelview/internal/content"
)

// ScrollState mirrors the wheel's coarse scroll state.
type ScrollState int

const (
	Idle ScrollState = iota
	Dragging
	Settling
)

func (s ScrollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Events is what the scroll engine emits. Dispatcher and Recorder both
// implement it.
type Events interface {
	ScrollOffsetChanged(offset int)
	ItemChanged(oldIndex, newIndex int)
	Selected(position int)
	StateChanged(state ScrollState)
}

// ItemSelectedListener is told about every committed selection.
type ItemSelectedListener interface {
	OnItemSelected(source any, item content.Item, position int)
}

// SelectedFunc adapts a function to ItemSelectedListener.
type SelectedFunc func(source any, item content.Item, position int)

func (f SelectedFunc) OnItemSelected(source any, item content.Item, position int) {
	f(source, item, position)
}

// WheelChangedListener receives the fine-grained scroll stream.
type WheelChangedListener interface {
	OnWheelScroll(offset int)
	OnWheelItemChanged(oldPosition, newPosition int)
	OnWheelSelected(position int)
	OnWheelScrollStateChanged(state ScrollState)
}

// Funcs implements WheelChangedListener with optional callbacks. Nil fields
// are skipped.
type Funcs struct {
	Scroll       func(offset int)
	ItemChanged  func(oldPosition, newPosition int)
	Selected     func(position int)
	StateChanged func(state ScrollState)
}

func (f Funcs) OnWheelScroll(offset int) {
	if f.Scroll != nil {
		f.Scroll(offset)
	}
}

func (f Funcs) OnWheelItemChanged(oldPosition, newPosition int) {
	if f.ItemChanged != nil {
		f.ItemChanged(oldPosition, newPosition)
	}
}

func (f Funcs) OnWheelSelected(position int) {
	if f.Selected != nil {
		f.Selected(position)
	}
}

func (f Funcs) OnWheelScrollStateChanged(state ScrollState) {
	if f.StateChanged != nil {
		f.StateChanged(state)
	}
}

// SoundPlayer plays the item-changed cue at a volume in [0, 1].
type SoundPlayer interface {
	Play(volume float64)
}

// Tee duplicates every event to each non-nil sink in order.
func Tee(sinks ...Events) Events {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type tee []Events

func (t tee) ScrollOffsetChanged(offset int) {
	for _, s := range t {
		s.ScrollOffsetChanged(offset)
	}
}

func (t tee) ItemChanged(oldIndex, newIndex int) {
	for _, s := range t {
		s.ItemChanged(oldIndex, newIndex)
	}
}

func (t tee) Selected(position int) {
	for _, s := range t {
		s.Selected(position)
	}
}

func (t tee) StateChanged(state ScrollState) {
	for _, s := range t {
		s.StateChanged(state)
	}
}

// Listen adapts a WheelChangedListener into an Events sink.
func Listen(l WheelChangedListener) Events { return listener{l} }

type listener struct{ l WheelChangedListener }

func (a listener) ScrollOffsetChanged(offset int)     { a.l.OnWheelScroll(offset) }
func (a listener) ItemChanged(oldIndex, newIndex int) { a.l.OnWheelItemChanged(oldIndex, newIndex) }
func (a listener) Selected(position int)              { a.l.OnWheelSelected(position) }
func (a listener) StateChanged(state ScrollState)     { a.l.OnWheelScrollStateChanged(state) }
