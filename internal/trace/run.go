package trace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wheelview/internal/dispatch"
	"wheelview/internal/wheel"
)

// DefaultMaxFrames bounds a single run.
const DefaultMaxFrames = 10000

// ErrFrameLimit is returned when a run keeps animating past its frame cap.
var ErrFrameLimit = errors.New("frame limit reached")

// Sample is the wheel state at a point of virtual time.
type Sample struct {
	At     time.Duration
	Offset int
	State  dispatch.ScrollState
}

// Trace is the outcome of a run.
type Trace struct {
	Wheel    string
	Script   Script
	Events   []dispatch.Event
	Samples  []Sample
	Frames   int // frames that moved the wheel
	Selected int
	Label    string
	Elapsed  time.Duration
}

// Series returns the offsets of every sample, for charting.
func (t *Trace) Series() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = float64(s.Offset)
	}
	return out
}

// Count returns how many events of kind were recorded.
func (t *Trace) Count(kind dispatch.Kind) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Summary is a one-line description of the outcome.
func (t *Trace) Summary() string {
	return fmt.Sprintf("%s: selected %d (%s) after %d frames, %s, %d item changes",
		t.Wheel, t.Selected, t.Label, t.Frames, t.Elapsed, t.Count(dispatch.KindItemChanged))
}

func (t *Trace) String() string {
	var b strings.Builder
	for _, e := range t.Events {
		if e.Kind == dispatch.KindScroll {
			continue
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	b.WriteString(t.Summary())
	return b.String()
}

// Options tune a run.
type Options struct {
	MaxFrames int
	Start     time.Time
}

// Run plays script against w on a virtual clock. Between steps and after
// the last one, the wheel is ticked once per frame while it animates.
func Run(ctx context.Context, w *wheel.Wheel, script Script, opts Options) (*Trace, error) {
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = DefaultMaxFrames
	}
	if opts.Start.IsZero() {
		opts.Start = time.Unix(0, 0)
	}

	rec := &dispatch.Recorder{}
	w.Observe(rec)

	t := &Trace{Wheel: w.Name(), Script: script}
	frame := w.FrameDuration()
	var now time.Duration

	sample := func() {
		t.Samples = append(t.Samples, Sample{At: now, Offset: w.ScrollOffset(), State: w.ScrollState()})
	}
	tick := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if t.Frames >= opts.MaxFrames {
			return ErrFrameLimit
		}
		now += frame
		if w.Tick() {
			t.Frames++
		}
		sample()
		return nil
	}

	sample()
	for i, st := range script {
		until := now + st.After
		for w.IsAnimating() && now+frame <= until {
			if err := tick(); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i, st, err)
			}
		}
		if now < until {
			now = until
		}

		at := opts.Start.Add(now)
		switch st.Kind {
		case StepDown:
			w.PointerDown(st.Y, at)
		case StepMove:
			w.PointerMove(st.Y, at)
		case StepUp:
			w.PointerUp(st.Y, at)
		case StepCancel:
			w.PointerCancel()
		case StepSelect:
			w.SetSelectedItemPosition(st.Position, st.Animate, st.Duration)
		}
		sample()
	}
	for w.IsAnimating() {
		if err := tick(); err != nil {
			return nil, fmt.Errorf("settle: %w", err)
		}
	}

	t.Events = append(t.Events, rec.Events...)
	t.Selected = w.SelectedItemPosition()
	if it, ok := w.SelectedItemData(); ok {
		t.Label = w.Style().Format.Label(it)
	}
	t.Elapsed = now
	return t, nil
}
