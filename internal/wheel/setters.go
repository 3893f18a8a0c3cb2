package wheel

import (
	"wheelview/internal/geometry"
	"wheelview/internal/projection"
)

// Setters that change item metrics re-measure and ask the host for a new
// layout. Purely visual ones only invalidate.

func (w *Wheel) SetTextSize(size float64) {
	if size <= 0 || size == w.textSize {
		return
	}
	w.textSize = size
	w.relayout()
}

func (w *Wheel) TextSize() float64 { return w.textSize }

func (w *Wheel) SetLineSpacing(spacing float64) {
	spacing = max(spacing, 0)
	if spacing == w.lineSpacing {
		return
	}
	w.lineSpacing = spacing
	w.relayout()
}

func (w *Wheel) LineSpacing() float64 { return w.lineSpacing }

func (w *Wheel) SetIntegerNeedFormat(enabled bool) {
	if enabled == w.style.Format.IntegerEnabled {
		return
	}
	w.style.Format.IntegerEnabled = enabled
	w.relayout()
}

func (w *Wheel) IsIntegerNeedFormat() bool { return w.style.Format.IntegerEnabled }

// SetIntegerFormat sets the printf layout for integers and turns integer
// formatting on.
func (w *Wheel) SetIntegerFormat(format string) {
	if format == "" {
		return
	}
	w.style.Format.Integer = format
	w.style.Format.IntegerEnabled = true
	w.relayout()
}

func (w *Wheel) IntegerFormat() string { return w.style.Format.Integer }

// SetVisibleItems normalizes n to an odd count.
func (w *Wheel) SetVisibleItems(n int) {
	n = geometry.NormalizeVisibleItems(n)
	if n == w.visible {
		return
	}
	w.visible = n
	w.host.RequestLayout()
	w.host.Invalidate()
}

func (w *Wheel) VisibleItems() int { return w.visible }

func (w *Wheel) SetCyclic(cyclic bool) {
	if cyclic == w.engine.Cyclic() {
		return
	}
	w.engine.SetCyclic(cyclic)
	w.host.Invalidate()
}

func (w *Wheel) IsCyclic() bool { return w.engine.Cyclic() }

func (w *Wheel) SetCurved(curved bool) {
	if curved == w.style.Curve.Enabled {
		return
	}
	w.style.Curve.Enabled = curved
	w.relayout()
}

func (w *Wheel) IsCurved() bool { return w.style.Curve.Enabled }

func (w *Wheel) SetAutoFitTextSize(enabled bool) {
	w.style.AutoFit = enabled
	w.host.Invalidate()
}

func (w *Wheel) IsAutoFitTextSize() bool { return w.style.AutoFit }

func (w *Wheel) SetTextAlign(a geometry.Align) {
	if a == w.style.Align {
		return
	}
	w.style.Align = a
	w.bounds.StartX = geometry.StartX(a, w.bounds.Width, w.padding, w.style.BoundaryMargin)
	w.host.Invalidate()
}

func (w *Wheel) TextAlign() geometry.Align { return w.style.Align }

func (w *Wheel) SetTextBoundaryMargin(margin float64) {
	w.style.BoundaryMargin = max(margin, 0)
	w.relayout()
}

func (w *Wheel) TextBoundaryMargin() float64 { return w.style.BoundaryMargin }

func (w *Wheel) SetPadding(p geometry.Padding) {
	w.padding = p
	w.relayout()
}

func (w *Wheel) Padding() geometry.Padding { return w.padding }

func (w *Wheel) SetNormalItemTextColor(c string) {
	w.style.TextColor = c
	w.host.Invalidate()
}

func (w *Wheel) NormalItemTextColor() string { return w.style.TextColor }

func (w *Wheel) SetSelectedItemTextColor(c string) {
	w.style.SelectedColor = c
	w.host.Invalidate()
}

func (w *Wheel) SelectedItemTextColor() string { return w.style.SelectedColor }

func (w *Wheel) SetShowDivider(show bool) {
	w.style.Divider.Show = show
	w.host.Invalidate()
}

func (w *Wheel) IsShowDivider() bool { return w.style.Divider.Show }

func (w *Wheel) SetDividerColor(c string) {
	w.style.Divider.Color = c
	w.host.Invalidate()
}

func (w *Wheel) DividerColor() string { return w.style.Divider.Color }

func (w *Wheel) SetDividerHeight(h float64) {
	w.style.Divider.Height = max(h, 0)
	w.host.Invalidate()
}

func (w *Wheel) DividerHeight() float64 { return w.style.Divider.Height }

func (w *Wheel) SetDividerType(t projection.DividerType) {
	w.style.Divider.Type = t
	w.host.Invalidate()
}

func (w *Wheel) DividerType() projection.DividerType { return w.style.Divider.Type }

func (w *Wheel) SetDividerPaddingForWrap(p float64) {
	w.style.Divider.WrapPadding = p
	w.host.Invalidate()
}

func (w *Wheel) DividerPaddingForWrap() float64 { return w.style.Divider.WrapPadding }

func (w *Wheel) SetDividerCap(c projection.Cap) {
	w.style.Divider.Cap = c
	w.host.Invalidate()
}

func (w *Wheel) DividerCap() projection.Cap { return w.style.Divider.Cap }

func (w *Wheel) SetDrawSelectedRect(show bool) {
	w.style.SelectedRect.Show = show
	w.host.Invalidate()
}

func (w *Wheel) IsDrawSelectedRect() bool { return w.style.SelectedRect.Show }

func (w *Wheel) SetSelectedRectColor(c string) {
	w.style.SelectedRect.Color = c
	w.host.Invalidate()
}

func (w *Wheel) SelectedRectColor() string { return w.style.SelectedRect.Color }

// SetSelectedRectRadius sets both corner radii.
func (w *Wheel) SetSelectedRectRadius(r float64) {
	w.SetSelectedRectLeftRadius(r)
	w.SetSelectedRectRightRadius(r)
}

func (w *Wheel) SetSelectedRectLeftRadius(r float64) {
	w.style.SelectedRect.LeftRadius = max(r, 0)
	w.host.Invalidate()
}

func (w *Wheel) SetSelectedRectRightRadius(r float64) {
	w.style.SelectedRect.RightRadius = max(r, 0)
	w.host.Invalidate()
}

func (w *Wheel) SelectedRectRadii() (left, right float64) {
	return w.style.SelectedRect.LeftRadius, w.style.SelectedRect.RightRadius
}

func (w *Wheel) SetCurvedArcDirection(d projection.ArcDirection) {
	w.style.Curve.Direction = d
	w.host.Invalidate()
}

func (w *Wheel) CurvedArcDirection() projection.ArcDirection { return w.style.Curve.Direction }

// SetCurvedArcDirectionFactor clamps f into [0, 1].
func (w *Wheel) SetCurvedArcDirectionFactor(f float64) {
	f = projection.ClampArcFactor(f)
	if f == w.style.Curve.Factor {
		return
	}
	w.style.Curve.Factor = f
	w.host.Invalidate()
}

func (w *Wheel) CurvedArcDirectionFactor() float64 { return w.style.Curve.Factor }

// SetCurvedRefractRatio caps r at 1; negative ratios restore the default.
func (w *Wheel) SetCurvedRefractRatio(r float64) {
	r = projection.ClampRefractRatio(r)
	if r == w.style.Curve.RefractRatio {
		return
	}
	w.style.Curve.RefractRatio = r
	w.host.Invalidate()
}

func (w *Wheel) CurvedRefractRatio() float64 { return w.style.Curve.RefractRatio }
