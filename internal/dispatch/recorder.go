package dispatch

import (
	"fmt"
	"strings"
)

// Kind tags a recorded event.
type Kind int

const (
	KindScroll Kind = iota
	KindItemChanged
	KindSelected
	KindStateChanged
)

func (k Kind) String() string {
	switch k {
	case KindScroll:
		return "scroll"
	case KindItemChanged:
		return "item-changed"
	case KindSelected:
		return "selected"
	case KindStateChanged:
		return "state"
	default:
		return "unknown"
	}
}

// Event is one entry of a recorded stream. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind     Kind
	Offset   int
	Old      int
	New      int
	Position int
	State    ScrollState
}

func (e Event) String() string {
	switch e.Kind {
	case KindScroll:
		return fmt.Sprintf("scroll %d", e.Offset)
	case KindItemChanged:
		return fmt.Sprintf("item-changed %d -> %d", e.Old, e.New)
	case KindSelected:
		return fmt.Sprintf("selected %d", e.Position)
	case KindStateChanged:
		return fmt.Sprintf("state %s", e.State)
	default:
		return e.Kind.String()
	}
}

// Recorder keeps every event in arrival order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) ScrollOffsetChanged(offset int) {
	r.Events = append(r.Events, Event{Kind: KindScroll, Offset: offset})
}

func (r *Recorder) ItemChanged(oldIndex, newIndex int) {
	r.Events = append(r.Events, Event{Kind: KindItemChanged, Old: oldIndex, New: newIndex})
}

func (r *Recorder) Selected(position int) {
	r.Events = append(r.Events, Event{Kind: KindSelected, Position: position})
}

func (r *Recorder) StateChanged(state ScrollState) {
	r.Events = append(r.Events, Event{Kind: KindStateChanged, State: state})
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Of returns the events of one kind.
func (r *Recorder) Of(kind Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) Count(kind Kind) int { return len(r.Of(kind)) }

// Last returns the most recent event of kind.
func (r *Recorder) Last(kind Kind) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == kind {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// States returns the sequence of state transitions.
func (r *Recorder) States() []ScrollState {
	var out []ScrollState
	for _, e := range r.Events {
		if e.Kind == KindStateChanged {
			out = append(out, e.State)
		}
	}
	return out
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, e := range r.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
