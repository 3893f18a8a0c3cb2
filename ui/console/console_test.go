package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wheelview/internal/dispatch"
	"wheelview/internal/trace"
)

func sampleTrace() *trace.Trace {
	return &trace.Trace{
		Wheel:  "hours",
		Script: trace.Tap(40),
		Events: []dispatch.Event{
			{Kind: dispatch.KindStateChanged, State: dispatch.Settling},
			{Kind: dispatch.KindScroll, Offset: 8},
			{Kind: dispatch.KindItemChanged, Old: 0, New: 1},
			{Kind: dispatch.KindSelected, Position: 1},
			{Kind: dispatch.KindStateChanged, State: dispatch.Idle},
		},
		Frames:   15,
		Selected: 1,
		Label:    "2",
		Elapsed:  290 * time.Millisecond,
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		event    dispatch.Event
		expected string
	}{
		{dispatch.Event{Kind: dispatch.KindSelected}, colorGreen},
		{dispatch.Event{Kind: dispatch.KindItemChanged}, colorYellow},
		{dispatch.Event{Kind: dispatch.KindStateChanged, State: dispatch.Idle}, colorGreen},
		{dispatch.Event{Kind: dispatch.KindStateChanged, State: dispatch.Dragging}, colorRed},
		{dispatch.Event{Kind: dispatch.KindScroll}, colorCyan},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, colorFor(tt.event), tt.event.String())
	}
}

func TestPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleTrace(), Options{Plain: true})
	out := buf.String()

	assert.Contains(t, out, "WHEEL TRACE HOURS")
	assert.Contains(t, out, "down 40")
	assert.Contains(t, out, "0 → 1")
	assert.Contains(t, out, "selected 1 (2) | frames: 15 | elapsed: 290ms")
	assert.NotContains(t, out, "scroll")
	assert.NotContains(t, out, "\033[")
}

func TestPrintScrollAndColor(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleTrace(), Options{Scroll: true})
	out := buf.String()

	assert.Contains(t, out, "scroll")
	assert.Contains(t, out, colorGreen+"selected"+colorReset)
}
