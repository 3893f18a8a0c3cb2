package scroller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(s *Scroller, limit int) (steps int, trail []int) {
	for s.ComputeScrollOffset() {
		steps++
		trail = append(trail, s.Current())
		if steps > limit {
			break
		}
	}
	return steps, trail
}

func TestNewIsFinished(t *testing.T) {
	s := New(60, 0)
	assert.True(t, s.IsFinished())
	assert.False(t, s.ComputeScrollOffset())
	assert.Equal(t, ModeNone, s.Mode())
}

func TestStartScrollReachesTarget(t *testing.T) {
	s := New(60, 0)
	s.StartScroll(100, 60, 250*time.Millisecond)
	require.False(t, s.IsFinished())
	assert.Equal(t, ModeSnap, s.Mode())

	steps, trail := run(s, 100)
	assert.Equal(t, 15, steps)
	assert.Equal(t, 160, s.Current())
	assert.True(t, s.IsFinished())

	for i := 1; i < len(trail); i++ {
		assert.GreaterOrEqual(t, trail[i], trail[i-1], "snap must be monotonic")
	}
}

func TestStartScrollZeroDistance(t *testing.T) {
	s := New(60, 0)
	s.StartScroll(42, 0, 250*time.Millisecond)
	assert.True(t, s.IsFinished())
	assert.Equal(t, 42, s.Current())
	assert.False(t, s.ComputeScrollOffset())
}

func TestStartScrollZeroDuration(t *testing.T) {
	s := New(60, 0)
	s.StartScroll(0, -30, 0)
	assert.True(t, s.IsFinished())
	assert.Equal(t, -30, s.Current())
}

func TestFlingTargetsBallisticStop(t *testing.T) {
	s := New(60, 2000)
	// v²/(2a) = 1000*1000/4000 = 250
	s.Fling(0, 1000, -10000, 10000)
	assert.Equal(t, 250, s.Final())
	assert.Equal(t, ModeFling, s.Mode())

	_, trail := run(s, 1000)
	assert.Equal(t, 250, s.Current())
	for i := 1; i < len(trail); i++ {
		assert.GreaterOrEqual(t, trail[i], trail[i-1])
		assert.LessOrEqual(t, trail[i], 250)
	}
}

func TestFlingNegativeVelocity(t *testing.T) {
	s := New(60, 2000)
	s.Fling(500, -1000, -10000, 10000)
	assert.Equal(t, 250, s.Final())
	run(s, 1000)
	assert.Equal(t, 250, s.Current())
}

func TestFlingClampsToBounds(t *testing.T) {
	s := New(60, 2500)
	s.Fling(0, 3000, 0, 550)
	assert.Equal(t, 550, s.Final())
	_, trail := run(s, 1000)
	for _, y := range trail {
		assert.GreaterOrEqual(t, y, 0)
		assert.LessOrEqual(t, y, 550)
	}
	assert.Equal(t, 550, s.Current())
}

func TestFlingAgainstWallFinishesImmediately(t *testing.T) {
	s := New(60, 2500)
	s.Fling(0, -3000, 0, 550)
	assert.True(t, s.IsFinished())
	assert.Equal(t, 0, s.Current())
}

func TestForceFinishedStopsInPlace(t *testing.T) {
	s := New(60, 0)
	s.StartScroll(0, 600, time.Second)
	s.ComputeScrollOffset()
	s.ComputeScrollOffset()
	at := s.Current()
	s.ForceFinished()
	assert.True(t, s.IsFinished())
	assert.Equal(t, at, s.Current())
	assert.False(t, s.ComputeScrollOffset())
}

func TestAbortAnimationJumpsToFinal(t *testing.T) {
	s := New(60, 0)
	s.StartScroll(0, 600, time.Second)
	s.ComputeScrollOffset()
	s.AbortAnimation()
	assert.Equal(t, 600, s.Current())
	assert.True(t, s.IsFinished())
}

func TestEaseOut(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, EaseOut(tt.in), 1e-9)
	}
}
