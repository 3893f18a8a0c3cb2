package dispatch

import (
	"log/slog"

	"wheelview/internal/content"
	"wheelview/internal/logger"
)

// Lookup resolves a committed position to its item.
type Lookup func(position int) (content.Item, bool)

// Dispatcher forwards engine events to the registered listeners.
type Dispatcher struct {
	source  any
	lookup  Lookup
	log     *slog.Logger
	onItem  ItemSelectedListener
	onWheel WheelChangedListener

	sound        SoundPlayer
	soundEnabled bool
	volume       float64
}

// New returns a dispatcher that reports source as the origin of selections.
func New(source any, lookup Lookup, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		source: source,
		lookup: lookup,
		log:    logger.Or(log),
		volume: 1,
	}
}

func (d *Dispatcher) SetItemSelectedListener(l ItemSelectedListener) { d.onItem = l }
func (d *Dispatcher) SetWheelChangedListener(l WheelChangedListener) { d.onWheel = l }
func (d *Dispatcher) ItemSelectedListener() ItemSelectedListener     { return d.onItem }
func (d *Dispatcher) WheelChangedListener() WheelChangedListener     { return d.onWheel }

// SetSoundPlayer installs the item-changed cue. A nil player disables it.
func (d *Dispatcher) SetSoundPlayer(p SoundPlayer) { d.sound = p }

func (d *Dispatcher) SetSoundEnabled(enabled bool) { d.soundEnabled = enabled }
func (d *Dispatcher) SoundEnabled() bool           { return d.soundEnabled }

// SetVolume clamps v into [0, 1].
func (d *Dispatcher) SetVolume(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	d.volume = v
}

func (d *Dispatcher) Volume() float64 { return d.volume }

func (d *Dispatcher) ScrollOffsetChanged(offset int) {
	if d.onWheel != nil {
		d.onWheel.OnWheelScroll(offset)
	}
}

func (d *Dispatcher) ItemChanged(oldIndex, newIndex int) {
	if d.onWheel != nil {
		d.onWheel.OnWheelItemChanged(oldIndex, newIndex)
	}
	if d.soundEnabled && d.sound != nil {
		d.sound.Play(d.volume)
	}
}

func (d *Dispatcher) Selected(position int) {
	d.Announce(position)
	if d.onWheel != nil {
		d.onWheel.OnWheelSelected(position)
	}
}

// Announce reports position to the item-selected listener only.
func (d *Dispatcher) Announce(position int) {
	if d.onItem == nil || d.lookup == nil {
		return
	}
	item, ok := d.lookup(position)
	if !ok {
		d.log.Debug("selection without item", "position", position)
		return
	}
	d.onItem.OnItemSelected(d.source, item, position)
}

func (d *Dispatcher) StateChanged(state ScrollState) {
	d.log.Debug("scroll state", "state", state.String())
	if d.onWheel != nil {
		d.onWheel.OnWheelScrollStateChanged(state)
	}
}
