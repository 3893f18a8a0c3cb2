package wheel

import "time"

// PointerDown starts a gesture at y and stops any animation.
func (w *Wheel) PointerDown(y int, at time.Time) {
	if w.items.Empty() {
		return
	}
	w.engine.Press()
	w.tracker.Down(y, at)
}

// PointerMove drags the wheel to follow y.
func (w *Wheel) PointerMove(y int, at time.Time) {
	dy, ok := w.tracker.Move(y, at)
	if !ok || dy == 0 {
		return
	}
	w.engine.DragDelta(dy)
}

// PointerUp ends the gesture with a fling or a snap. It reports whether
// the host must start ticking.
func (w *Wheel) PointerUp(y int, at time.Time) bool {
	if dy, ok := w.tracker.Move(y, at); ok && dy != 0 {
		w.engine.DragDelta(dy)
	}
	r, ok := w.tracker.Up(y, at)
	if !ok {
		return false
	}
	return w.engine.Release(r.Velocity, r.Press, r.Y, w.bounds.CenterY)
}

// PointerCancel abandons the gesture and snaps to the nearest item.
func (w *Wheel) PointerCancel() bool {
	if _, ok := w.tracker.Cancel(); !ok {
		return false
	}
	return w.engine.Settle()
}
