// Package geometry derives item height, measured size and draw bounds of a
// wheel from its configuration and the host's font metrics.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// FontMetrics follows the baseline-relative convention: Top and Ascent are
// negative (above the baseline), Descent and Bottom positive.
type FontMetrics struct {
	Top     float64
	Ascent  float64
	Descent float64
	Bottom  float64
}

// Measurer is provided by the host.
type Measurer interface {
	Metrics(size float64) FontMetrics
	MeasureText(text string, size float64) float64
}

// Align is the horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlign accepts "left", "center" and "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "", "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, fmt.Errorf("unknown text align %q", s)
}

// Padding in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Rect is an integer rectangle with exclusive right/bottom edges.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int   { return r.Right - r.Left }
func (r Rect) Height() int  { return r.Bottom - r.Top }
func (r Rect) CenterX() int { return (r.Left + r.Right) >> 1 }
func (r Rect) CenterY() int { return (r.Top + r.Bottom) >> 1 }

// Metrics are the content-derived quantities.
type Metrics struct {
	TextSize          float64
	ItemHeight        int
	MaxTextWidth      int
	CenterToBaselineY int
	Font              FontMetrics
}

// Recompute measures labels at textSize. The item height is the glyph span
// plus line spacing, rounded to whole pixels.
func Recompute(labels []string, m Measurer, textSize, lineSpacing float64) Metrics {
	fm := m.Metrics(textSize)
	maxWidth := 0
	for _, label := range labels {
		w := int(m.MeasureText(label, textSize))
		if w > maxWidth {
			maxWidth = w
		}
	}
	return Metrics{
		TextSize:          textSize,
		ItemHeight:        int(math.Round(fm.Bottom - fm.Top + lineSpacing)),
		MaxTextWidth:      maxWidth,
		CenterToBaselineY: CenterToBaseline(fm),
		Font:              fm,
	}
}

// CenterToBaseline is the distance from the vertical text center to the
// baseline, negative for fonts that sit above it.
func CenterToBaseline(fm FontMetrics) int {
	return int(fm.Ascent + (fm.Descent-fm.Ascent)/2)
}

// NormalizeVisibleItems maps any count onto the odd value at or above it so a
// single item occupies the exact vertical center.
func NormalizeVisibleItems(visible int) int {
	v := visible/2*2 + 1
	if v < 0 {
		return -v
	}
	return v
}

// MeasuredSize is the size a wheel asks of its host. A curved wheel wraps the
// flat stack onto half a circumference so it needs 2/π of the height, plus a
// lateral allowance for the arc's bulge.
func MeasuredSize(m Metrics, visible int, curved bool, pad Padding, margin float64) (width, height int) {
	if curved {
		height = int(float64(m.ItemHeight*visible)*2/math.Pi + float64(pad.Top+pad.Bottom))
	} else {
		height = m.ItemHeight*visible + pad.Top + pad.Bottom
	}
	width = int(float64(m.MaxTextWidth) + float64(pad.Left+pad.Right) + margin*2)
	if curved {
		width += int(math.Sin(math.Pi/48) * float64(height))
	}
	return width, height
}

// Bounds are the layout-derived drawing limits.
type Bounds struct {
	Width, Height  int
	Draw           Rect
	Clip           Rect
	CenterX        int
	CenterY        int
	SelectedTop    int
	SelectedBottom int
	StartX         int
	Radius         int
}

// Layout places the selected band at the vertical center of the padded area.
func Layout(width, height int, pad Padding, m Metrics, align Align, margin float64) Bounds {
	draw := Rect{Left: pad.Left, Top: pad.Top, Right: width - pad.Right, Bottom: height - pad.Bottom}
	b := Bounds{
		Width:   width,
		Height:  height,
		Draw:    draw,
		Clip:    draw,
		CenterX: draw.CenterX(),
		CenterY: draw.CenterY(),
		Radius:  (height - pad.Top - pad.Bottom) / 2,
	}
	b.SelectedTop = b.CenterY - m.ItemHeight/2
	b.SelectedBottom = b.CenterY + m.ItemHeight/2
	b.StartX = StartX(align, width, pad, margin)
	return b
}

// StartX is the text anchor for the given alignment.
func StartX(align Align, width int, pad Padding, margin float64) int {
	switch align {
	case AlignLeft:
		return int(float64(pad.Left) + margin)
	case AlignRight:
		return int(float64(width-pad.Right) - margin)
	default:
		return width / 2
	}
}

// ScrollLimits returns the offset range. Cyclic wheels are unbounded.
func ScrollLimits(n, itemHeight int, cyclic bool) (lo, hi int) {
	if cyclic {
		return math.MinInt, math.MaxInt
	}
	if n <= 1 {
		return 0, 0
	}
	return 0, (n - 1) * itemHeight
}
