// Package wheel is the picker widget a host embeds. It owns the content,
// the geometry and the scroll engine, and turns them into a projected frame
// on demand.
package wheel

import (
	"log/slog"
	"time"

	"wheelview/internal/config"
	"wheelview/internal/content"
	"wheelview/internal/dispatch"
	"wheelview/internal/engine"
	"wheelview/internal/geometry"
	"wheelview/internal/gesture"
	"wheelview/internal/logger"
	"wheelview/internal/projection"
)

// Host is the container the wheel lives in.
type Host interface {
	// RequestLayout asks for MeasuredSize and Layout to be called again.
	RequestLayout()
	// Invalidate asks for a repaint.
	Invalidate()
}

type nopHost struct{}

func (nopHost) RequestLayout() {}
func (nopHost) Invalidate()    {}

// Wheel is a single picker column. It is driven from one goroutine.
type Wheel struct {
	name     string
	measurer geometry.Measurer
	host     Host
	log      *slog.Logger

	items         content.List
	style         projection.Style
	textSize      float64
	lineSpacing   float64
	visible       int
	padding       geometry.Padding
	resetSelected bool

	metrics geometry.Metrics
	bounds  geometry.Bounds

	engine    *engine.Engine
	events    *dispatch.Dispatcher
	observers []dispatch.Events
	tracker   *gesture.Tracker
}

// New builds an empty wheel from cfg. name identifies the wheel as the
// source of selection callbacks and in logs.
func New(name string, cfg config.Config, m geometry.Measurer, log *slog.Logger) *Wheel {
	cfg = cfg.Normalize()
	if m == nil {
		m = geometry.DefaultMonospace()
	}
	w := &Wheel{
		name:          name,
		measurer:      m,
		host:          nopHost{},
		log:           logger.Or(log).With("wheel", name),
		style:         cfg.Style(),
		textSize:      cfg.Wheel.TextSize,
		lineSpacing:   cfg.Wheel.LineSpacing,
		visible:       cfg.Wheel.VisibleItems,
		resetSelected: cfg.Wheel.ResetSelectedPosition,
		tracker:       gesture.NewTracker(),
	}
	w.events = dispatch.New(w, w.ItemData, w.log)
	w.events.SetSoundEnabled(cfg.Sound.Enabled)
	w.events.SetVolume(cfg.Sound.Volume)

	opts := cfg.EngineOptions()
	opts.Log = w.log
	w.engine = engine.New(opts, (*fanout)(w))
	w.recompute()
	return w
}

// Name is the label given at construction.
func (w *Wheel) Name() string { return w.name }

func (w *Wheel) String() string { return "wheel(" + w.name + ")" }

// SetHost attaches the container. Nil detaches it.
func (w *Wheel) SetHost(h Host) {
	if h == nil {
		h = nopHost{}
	}
	w.host = h
}

// Observe adds a sink that sees every engine event after the listeners.
func (w *Wheel) Observe(e dispatch.Events) {
	if e != nil {
		w.observers = append(w.observers, e)
	}
}

// fanout forwards engine events to the dispatcher, then the observers.
type fanout Wheel

func (f *fanout) ScrollOffsetChanged(offset int) {
	f.events.ScrollOffsetChanged(offset)
	for _, o := range f.observers {
		o.ScrollOffsetChanged(offset)
	}
	f.host.Invalidate()
}

func (f *fanout) ItemChanged(oldIndex, newIndex int) {
	f.events.ItemChanged(oldIndex, newIndex)
	for _, o := range f.observers {
		o.ItemChanged(oldIndex, newIndex)
	}
}

func (f *fanout) Selected(position int) {
	f.events.Selected(position)
	for _, o := range f.observers {
		o.Selected(position)
	}
}

func (f *fanout) StateChanged(state dispatch.ScrollState) {
	f.events.StateChanged(state)
	for _, o := range f.observers {
		o.StateChanged(state)
	}
}

// recompute re-measures the content and re-anchors the engine.
func (w *Wheel) recompute() {
	w.metrics = geometry.Recompute(w.items.Labels(w.style.Format), w.measurer, w.textSize, w.lineSpacing)
	w.engine.SetItemHeight(w.metrics.ItemHeight)
	if w.bounds.Width > 0 || w.bounds.Height > 0 {
		w.bounds = geometry.Layout(w.bounds.Width, w.bounds.Height, w.padding, w.metrics, w.style.Align, w.style.BoundaryMargin)
	}
}

func (w *Wheel) relayout() {
	w.recompute()
	w.host.RequestLayout()
	w.host.Invalidate()
}

// SetDataItems replaces the content. Nil values are dropped and the slice
// is copied. Any animation stops immediately.
func (w *Wheel) SetDataItems(values []any) {
	w.SetItems(content.FromValues(values))
}

// SetItems replaces the content with an already built list.
func (w *Wheel) SetItems(list content.List) {
	w.items = list
	w.engine.SetCount(list.Len(), w.resetSelected)
	w.relayout()
}

// Items returns the current content.
func (w *Wheel) Items() content.List { return w.items }

// ItemData returns the item at position, clamped into range.
func (w *Wheel) ItemData(position int) (content.Item, bool) {
	return w.items.At(position)
}

// SelectedItemPosition is the committed selection.
func (w *Wheel) SelectedItemPosition() int { return w.engine.SelectedIndex() }

// SelectedItemData is the item at the committed selection.
func (w *Wheel) SelectedItemData() (content.Item, bool) {
	return w.ItemData(w.engine.SelectedIndex())
}

// CurrentPosition is the item nearest the center line right now.
func (w *Wheel) CurrentPosition() int { return w.engine.Index(w.engine.Offset()) }

func (w *Wheel) ScrollOffset() int                 { return w.engine.Offset() }
func (w *Wheel) ScrollState() dispatch.ScrollState { return w.engine.State() }
func (w *Wheel) ScrollPhase() engine.Phase         { return w.engine.Phase() }
func (w *Wheel) IsAnimating() bool                 { return w.engine.IsAnimating() }
func (w *Wheel) FrameDuration() time.Duration      { return w.engine.FrameDuration() }
func (w *Wheel) Metrics() geometry.Metrics         { return w.metrics }
func (w *Wheel) Bounds() geometry.Bounds           { return w.bounds }
func (w *Wheel) Style() projection.Style           { return w.style }

// SetSelectedItemPosition selects position, animating over d (or the
// default duration when d is zero) if animate is set. It reports whether
// the host must start ticking.
func (w *Wheel) SetSelectedItemPosition(position int, animate bool, d time.Duration) bool {
	return w.engine.SetSelected(position, animate, d)
}

// ScrollItems animates delta items from the current one over d (or the
// default duration). It reports whether the host must start ticking.
func (w *Wheel) ScrollItems(delta int, d time.Duration) bool {
	return w.engine.ScrollBy(delta, d)
}

// SetOnItemSelectedListener registers l and immediately reports the current
// selection to it.
func (w *Wheel) SetOnItemSelectedListener(l dispatch.ItemSelectedListener) {
	w.events.SetItemSelectedListener(l)
	if l != nil && !w.items.Empty() {
		w.events.Announce(w.engine.SelectedIndex())
	}
}

func (w *Wheel) SetOnWheelChangedListener(l dispatch.WheelChangedListener) {
	w.events.SetWheelChangedListener(l)
}

// SetSoundPlayer installs the item-changed cue player.
func (w *Wheel) SetSoundPlayer(p dispatch.SoundPlayer) { w.events.SetSoundPlayer(p) }
func (w *Wheel) SetSoundEffect(enabled bool)           { w.events.SetSoundEnabled(enabled) }
func (w *Wheel) IsSoundEffect() bool                   { return w.events.SoundEnabled() }
func (w *Wheel) SetPlayVolume(v float64)               { w.events.SetVolume(v) }
func (w *Wheel) PlayVolume() float64                   { return w.events.Volume() }

// SetResetSelectedPosition controls whether new content resets the
// selection to 0 or keeps it clamped.
func (w *Wheel) SetResetSelectedPosition(reset bool) { w.resetSelected = reset }
func (w *Wheel) IsResetSelectedPosition() bool       { return w.resetSelected }

// MeasuredSize is the size the wheel wants from its host.
func (w *Wheel) MeasuredSize() (width, height int) {
	return geometry.MeasuredSize(w.metrics, w.visible, w.style.Curve.Enabled, w.padding, w.style.BoundaryMargin)
}

// Layout fixes the wheel's size.
func (w *Wheel) Layout(width, height int) {
	w.bounds = geometry.Layout(width, height, w.padding, w.metrics, w.style.Align, w.style.BoundaryMargin)
	w.host.Invalidate()
}

// Frame projects the current offset.
func (w *Wheel) Frame() projection.Frame {
	return projection.Project(projection.Input{
		Items:        w.items,
		Cyclic:       w.engine.Cyclic(),
		Offset:       w.engine.Offset(),
		VisibleItems: w.visible,
		Metrics:      w.metrics,
		Bounds:       w.bounds,
		Measurer:     w.measurer,
		Style:        w.style,
	})
}

// Tick advances one animation frame and reports whether another is due.
func (w *Wheel) Tick() bool { return w.engine.Tick() }

// ForceFinishScroll stops any animation where it is.
func (w *Wheel) ForceFinishScroll() { w.engine.ForceFinish() }
