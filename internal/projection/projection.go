// Package projection decides, for one scroll offset, which items are visible
// and where and how each one is drawn. Flat wheels stack items vertically;
// curved wheels wrap the stack around a cylinder facing the viewer.
//
// Output is a Frame of draw operations rebuilt on every call. Nothing in it
// outlives the call, so per-item overrides (color, alpha, size) never leak
// from one item to the next.
package projection

import (
	"math"

	"wheelview/internal/content"
	"wheelview/internal/geometry"
)

// Role tells the renderer which color set an operation uses.
type Role int

const (
	RoleNormal Role = iota
	RoleSelected
)

func (r Role) String() string {
	if r == RoleSelected {
		return "selected"
	}
	return "normal"
}

// Transform3D is the camera transform of a curved item. RotateX is in
// degrees.
type Transform3D struct {
	RotateX    float64
	TranslateY float64
	TranslateZ float64
	PivotX     float64
	PivotY     float64
}

// DrawOp draws one label, clipped to Clip.
type DrawOp struct {
	Index     int
	Position  int
	Text      string
	X         int
	BaselineY float64
	OffsetY   int
	Clip      geometry.Rect
	Role      Role
	Color     string
	Alpha     int
	TextSize  float64
	Align     geometry.Align
	Transform *Transform3D
}

// Line is a horizontal divider.
type Line struct {
	X0, X1 int
	Y      int
	Width  float64
	Color  string
	Cap    Cap
}

// RoundRect is the highlight drawn behind the selected band.
type RoundRect struct {
	Rect        geometry.Rect
	LeftRadius  float64
	RightRadius float64
	Color       string
}

// Frame is everything to paint for one offset, back to front: the selected
// rect, the dividers, then the item ops in order.
type Frame struct {
	SelectedRect *RoundRect
	Dividers     []Line
	Ops          []DrawOp
}

// Input bundles the state a frame is computed from.
type Input struct {
	Items        content.List
	Cyclic       bool
	Offset       int
	VisibleItems int
	Metrics      geometry.Metrics
	Bounds       geometry.Bounds
	Measurer     geometry.Measurer
	Style        Style
}

// VisibleRange returns the half-open window of raw indices that can reach
// the viewport at offset.
func VisibleRange(offset, itemHeight, visible int) (lo, hi int) {
	scrolled := offset / itemHeight
	rem := offset % itemHeight
	half := (visible + 1) / 2
	switch {
	case rem < 0:
		return scrolled - half - 1, scrolled + half
	case rem > 0:
		return scrolled - half, scrolled + half + 1
	default:
		return scrolled - half, scrolled + half
	}
}

// ItemOffset is the vertical distance from the wheel center to item index.
func ItemOffset(index, offset, itemHeight int) int {
	return (index-offset/itemHeight)*itemHeight - offset%itemHeight
}

// Cylinder maps an item offset onto the cylinder. It reports false when the
// item is past the horizon and must not be drawn.
func Cylinder(y, radius int) (t Transform3D, alpha int, ok bool) {
	if radius <= 0 || math.Abs(float64(y)) > float64(radius)*math.Pi/2 {
		return Transform3D{}, 0, false
	}
	r := float64(radius)
	angle := float64(y) / r
	t = Transform3D{
		RotateX:    -angle * 180 / math.Pi,
		TranslateY: math.Sin(angle) * r,
		TranslateZ: (1 - math.Cos(angle)) * r,
	}
	alpha = int(math.Cos(angle) * 255)
	return t, alpha, true
}

// Project computes the frame for in. An empty list or zero item height
// yields an empty frame.
func Project(in Input) Frame {
	var f Frame
	h := in.Metrics.ItemHeight
	if in.Items.Empty() || h <= 0 {
		return f
	}

	f.SelectedRect = selectedRect(in)
	f.Dividers = dividers(in)

	lo, hi := VisibleRange(in.Offset, h, in.VisibleItems)
	for i := lo; i < hi; i++ {
		item, ok := in.Items.Resolve(i, in.Cyclic)
		if !ok {
			continue
		}
		text := in.Style.Format.Label(item)
		position := i
		if in.Cyclic {
			position = content.Wrap(i, in.Items.Len())
		}
		if in.Style.Curve.Enabled {
			f.Ops = appendCurved(f.Ops, in, i, position, text)
		} else {
			f.Ops = appendFlat(f.Ops, in, i, position, text)
		}
	}
	return f
}

// pass is one clipped draw of an item.
type pass struct {
	role        Role
	top, bottom int
}

// passes splits an item at offset y by the selected band edges.
func passes(in Input, y int) []pass {
	b := in.Bounds
	h := in.Metrics.ItemHeight
	switch {
	case y == 0:
		return []pass{{RoleSelected, b.SelectedTop, b.SelectedBottom}}
	case y > 0 && y < h:
		return []pass{
			{RoleSelected, b.SelectedTop, b.SelectedBottom},
			{RoleNormal, b.SelectedBottom, b.Clip.Bottom},
		}
	case y < 0 && y > -h:
		return []pass{
			{RoleSelected, b.SelectedTop, b.SelectedBottom},
			{RoleNormal, b.Clip.Top, b.SelectedTop},
		}
	default:
		return []pass{{RoleNormal, b.Clip.Top, b.Clip.Bottom}}
	}
}

func (in Input) colorFor(r Role) string {
	if r == RoleSelected {
		return in.Style.SelectedColor
	}
	return in.Style.TextColor
}

func (in Input) clip(top, bottom int) geometry.Rect {
	return geometry.Rect{Left: in.Bounds.Clip.Left, Top: top, Right: in.Bounds.Clip.Right, Bottom: bottom}
}

// base returns the text size, start X and center-to-baseline distance for
// text, applying auto-fit when enabled.
func (in Input) base(text string) Fit {
	if in.Style.AutoFit && in.Measurer != nil {
		return FitText(text, in.Measurer, in.Metrics.TextSize, in.Bounds.Width, in.Style.BoundaryMargin, in.Style.Align, in.Bounds.StartX, in.Metrics.CenterToBaselineY)
	}
	return Fit{Size: in.Metrics.TextSize, StartX: in.Bounds.StartX, CenterToBaselineY: in.Metrics.CenterToBaselineY}
}

func appendFlat(ops []DrawOp, in Input, index, position int, text string) []DrawOp {
	y := ItemOffset(index, in.Offset, in.Metrics.ItemHeight)
	fit := in.base(text)
	for _, p := range passes(in, y) {
		ops = append(ops, DrawOp{
			Index:     index,
			Position:  position,
			Text:      text,
			X:         fit.StartX,
			BaselineY: float64(in.Bounds.CenterY + y - fit.CenterToBaselineY),
			OffsetY:   y,
			Clip:      in.clip(p.top, p.bottom),
			Role:      p.role,
			Color:     in.colorFor(p.role),
			Alpha:     255,
			TextSize:  fit.Size,
			Align:     in.Style.Align,
		})
	}
	return ops
}

func appendCurved(ops []DrawOp, in Input, index, position int, text string) []DrawOp {
	y := ItemOffset(index, in.Offset, in.Metrics.ItemHeight)
	t, alpha, ok := Cylinder(y, in.Bounds.Radius)
	if !ok {
		return ops
	}
	fit := in.base(text)

	pivotX := float64(in.Bounds.CenterX)
	switch in.Style.Curve.Direction {
	case ArcLeft:
		pivotX *= 1 + in.Style.Curve.Factor
	case ArcRight:
		pivotX *= 1 - in.Style.Curve.Factor
	}
	t.PivotX = pivotX
	t.PivotY = float64(in.Bounds.CenterY) + t.TranslateY

	for _, p := range passes(in, y) {
		size := fit.Size
		ctb := fit.CenterToBaselineY
		a := 255
		if p.role == RoleNormal {
			size *= in.Style.Curve.RefractRatio
			a = alpha
			if in.Measurer != nil {
				ctb = geometry.CenterToBaseline(in.Measurer.Metrics(size))
			}
		}
		tr := t
		ops = append(ops, DrawOp{
			Index:     index,
			Position:  position,
			Text:      text,
			X:         fit.StartX,
			BaselineY: t.PivotY - float64(ctb),
			OffsetY:   y,
			Clip:      in.clip(p.top, p.bottom),
			Role:      p.role,
			Color:     in.colorFor(p.role),
			Alpha:     a,
			TextSize:  size,
			Align:     in.Style.Align,
			Transform: &tr,
		})
	}
	return ops
}

func selectedRect(in Input) *RoundRect {
	s := in.Style.SelectedRect
	if !s.Show {
		return nil
	}
	return &RoundRect{
		Rect:        in.clip(in.Bounds.SelectedTop, in.Bounds.SelectedBottom),
		LeftRadius:  s.LeftRadius,
		RightRadius: s.RightRadius,
		Color:       s.Color,
	}
}

func dividers(in Input) []Line {
	d := in.Style.Divider
	if !d.Show {
		return nil
	}
	b := in.Bounds
	x0, x1 := b.Clip.Left, b.Clip.Right
	if d.Type == DividerWrap {
		half := float64(in.Metrics.MaxTextWidth / 2)
		x0 = max(int(float64(b.CenterX)-half-d.WrapPadding), b.Clip.Left)
		x1 = min(int(float64(b.CenterX)+half+d.WrapPadding), b.Clip.Right)
	}
	return []Line{
		{X0: x0, X1: x1, Y: b.SelectedTop, Width: d.Height, Color: d.Color, Cap: d.Cap},
		{X0: x0, X1: x1, Y: b.SelectedBottom, Width: d.Height, Color: d.Color, Cap: d.Cap},
	}
}
