package trace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelview/internal/config"
	"wheelview/internal/dispatch"
	"wheelview/internal/geometry"
	"wheelview/internal/wheel"
)

func newWheel(t *testing.T, n int) *wheel.Wheel {
	t.Helper()
	w := wheel.New("trace", config.Default(), geometry.DefaultMonospace(), nil)
	values := make([]any, n)
	for i := range values {
		values[i] = i
	}
	w.SetDataItems(values)
	w.Layout(w.MeasuredSize())
	return w
}

func TestParse(t *testing.T) {
	script, err := Parse(`
		down 100        # press
		move 80 +20ms; move 40 +30ms
		up 40 +250ms
		wait 1s
		select 3 animate 100ms +5ms
		cancel
	`)
	require.NoError(t, err)
	require.Len(t, script, 7)

	assert.Equal(t, Step{Kind: StepDown, Y: 100}, script[0])
	assert.Equal(t, Step{Kind: StepMove, Y: 80, After: 20 * time.Millisecond}, script[1])
	assert.Equal(t, Step{Kind: StepUp, Y: 40, After: 250 * time.Millisecond}, script[3])
	assert.Equal(t, Step{Kind: StepWait, After: time.Second}, script[4])
	assert.Equal(t, Step{Kind: StepSelect, Position: 3, Animate: true, Duration: 100 * time.Millisecond, After: 5 * time.Millisecond}, script[5])
	assert.Equal(t, StepCancel, script[6].Kind)
}

func TestParseRoundTrip(t *testing.T) {
	script := append(Flick(200, 50, 3, 10*time.Millisecond), Step{Kind: StepWait, After: time.Second})
	back, err := Parse(script.String())
	require.NoError(t, err)
	assert.Equal(t, script, back)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown step":  "jump 3",
		"missing y":     "down",
		"bad y":         "move x",
		"bad delay":     "up 3 +soon",
		"cancel args":   "cancel 3",
		"wait no arg":   "wait",
		"select no pos": "select",
		"select extra":  "select 1 quickly",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			assert.Error(t, err)
		})
	}
}

func TestScriptBuilders(t *testing.T) {
	f := Flick(100, 40, 3, 10*time.Millisecond)
	require.Len(t, f, 5)
	assert.Equal(t, []int{100, 80, 60, 40, 40}, []int{f[0].Y, f[1].Y, f[2].Y, f[3].Y, f[4].Y})
	assert.Zero(t, f[4].After)

	d := Drag(100, 40, 3, 10*time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, d[len(d)-1].After)

	tap := Tap(7)
	assert.Equal(t, StepDown, tap[0].Kind)
	assert.Equal(t, StepUp, tap[1].Kind)
}

func TestRunDragSettles(t *testing.T) {
	w := newWheel(t, 10)
	script, err := Parse("down 100; move 80 +20ms; move 40 +30ms; up 40 +250ms")
	require.NoError(t, err)

	tr, err := Run(context.Background(), w, script, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, tr.Selected)
	assert.Equal(t, "4", tr.Label)
	assert.Equal(t, 64, tr.Samples[len(tr.Samples)-1].Offset)
	assert.Positive(t, tr.Frames)
	assert.Equal(t, 1, tr.Count(dispatch.KindSelected))
	assert.Len(t, tr.Series(), len(tr.Samples))
	assert.Contains(t, tr.Summary(), "selected 4")
	assert.Contains(t, tr.String(), "selected 4")
}

func TestRunFlingStaysInBounds(t *testing.T) {
	w := newWheel(t, 12)
	tr, err := Run(context.Background(), w, Flick(200, 50, 5, 10*time.Millisecond), Options{})
	require.NoError(t, err)

	for _, s := range tr.Series() {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 11*16.0)
	}
	assert.Equal(t, 11, tr.Selected)
	assert.Equal(t, dispatch.Idle, tr.Samples[len(tr.Samples)-1].State)
}

func TestRunSelect(t *testing.T) {
	w := newWheel(t, 10)

	tr, err := Run(context.Background(), w, Script{{Kind: StepSelect, Position: 3}}, Options{})
	require.NoError(t, err)
	assert.Zero(t, tr.Frames)
	assert.Equal(t, 3, tr.Selected)

	tr, err = Run(context.Background(), w, Script{{Kind: StepSelect, Position: 6, Animate: true}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 15, tr.Frames)
	assert.Equal(t, 6, tr.Selected)
	assert.Equal(t, 96, w.ScrollOffset())
}

func TestRunWaitAdvancesAnimation(t *testing.T) {
	w := newWheel(t, 10)
	script := Script{
		{Kind: StepSelect, Position: 5, Animate: true},
		{Kind: StepWait, After: time.Second},
	}
	tr, err := Run(context.Background(), w, script, Options{})
	require.NoError(t, err)
	assert.Equal(t, 15, tr.Frames)
	assert.Equal(t, time.Second, tr.Elapsed)
}

func TestRunFrameLimit(t *testing.T) {
	w := newWheel(t, 10)
	_, err := Run(context.Background(), w, Script{{Kind: StepSelect, Position: 5, Animate: true}}, Options{MaxFrames: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFrameLimit))
}

func TestRunCancelledContext(t *testing.T) {
	w := newWheel(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, w, Script{{Kind: StepSelect, Position: 5, Animate: true}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
