package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVisibleItems(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 3}, {3, 3}, {4, 5}, {5, 5}, {0, 1}, {7, 7}, {-1, 1}, {-3, 1}, {-4, 3},
	}
	for _, tt := range tests {
		got := NormalizeVisibleItems(tt.in)
		assert.Equal(t, tt.want, got, "NormalizeVisibleItems(%d)", tt.in)
		assert.Equal(t, 1, got%2, "result must be odd")
	}
}

func TestRecompute(t *testing.T) {
	m := Recompute([]string{"1", "212", "4231435"}, DefaultMonospace(), 60, 0)

	assert.Equal(t, 60, m.ItemHeight)
	assert.Equal(t, 7*30, m.MaxTextWidth)
	// ascent -42, descent 12 → center sits 15px above the baseline
	assert.Equal(t, -15, m.CenterToBaselineY)

	spaced := Recompute([]string{"x"}, DefaultMonospace(), 16, 4.4)
	assert.Equal(t, 20, spaced.ItemHeight)
}

func TestRecomputeResetsWidth(t *testing.T) {
	wide := Recompute([]string{"a very long label"}, DefaultMonospace(), 16, 0)
	narrow := Recompute([]string{"ab"}, DefaultMonospace(), 16, 0)
	assert.Greater(t, wide.MaxTextWidth, narrow.MaxTextWidth)
	assert.Equal(t, 16, narrow.MaxTextWidth)
}

func TestMeasuredSizeFlat(t *testing.T) {
	m := Metrics{ItemHeight: 50, MaxTextWidth: 100}
	w, h := MeasuredSize(m, 5, false, Padding{Left: 3, Top: 4, Right: 5, Bottom: 6}, 2)
	assert.Equal(t, 50*5+10, h)
	assert.Equal(t, 100+8+4, w)
}

func TestMeasuredSizeCurved(t *testing.T) {
	m := Metrics{ItemHeight: 50, MaxTextWidth: 100}
	w, h := MeasuredSize(m, 5, true, Padding{}, 0)

	flat := float64(m.ItemHeight * 5)
	wantH := int(flat * 2 / math.Pi)
	assert.Equal(t, wantH, h)
	assert.Equal(t, 100+int(math.Sin(math.Pi/48)*float64(wantH)), w)
}

func TestLayout(t *testing.T) {
	m := Metrics{ItemHeight: 40}
	b := Layout(200, 300, Padding{Top: 10, Bottom: 10}, m, AlignCenter, 4)

	assert.Equal(t, 150, b.CenterY)
	assert.Equal(t, 100, b.CenterX)
	assert.Equal(t, 130, b.SelectedTop)
	assert.Equal(t, 170, b.SelectedBottom)
	assert.Equal(t, 140, b.Radius)
	assert.Equal(t, 100, b.StartX)
	assert.Equal(t, Rect{Left: 0, Top: 10, Right: 200, Bottom: 290}, b.Clip)

	left := Layout(200, 300, Padding{Left: 6}, m, AlignLeft, 4)
	assert.Equal(t, 10, left.StartX)
	right := Layout(200, 300, Padding{Right: 6}, m, AlignRight, 4)
	assert.Equal(t, 190, right.StartX)
}

func TestScrollLimits(t *testing.T) {
	lo, hi := ScrollLimits(12, 50, false)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 550, hi)

	lo, hi = ScrollLimits(0, 50, false)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)

	lo, hi = ScrollLimits(3, 50, true)
	assert.Equal(t, math.MinInt, lo)
	assert.Equal(t, math.MaxInt, hi)
}

func TestParseAlign(t *testing.T) {
	a, err := ParseAlign("LEFT")
	require.NoError(t, err)
	assert.Equal(t, AlignLeft, a)

	a, err = ParseAlign("")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	_, err = ParseAlign("justify")
	assert.Error(t, err)
}

func TestMonospaceWideRunes(t *testing.T) {
	m := DefaultMonospace()
	assert.Equal(t, 2*8.0, m.MeasureText("ab", 16))
	assert.Equal(t, 4*8.0, m.MeasureText("上午", 16))
}
