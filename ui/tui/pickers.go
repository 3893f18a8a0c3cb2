package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wheelview/internal/config"
	"wheelview/internal/content"
	"wheelview/internal/dispatch"
	"wheelview/internal/geometry"
	"wheelview/internal/source"
	"wheelview/internal/wheel"
	"wheelview/ui/tui/components"
	"wheelview/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Picker is one demo page: a row of wheels and a description of what they
// currently select.
type Picker struct {
	Page    state.Page
	Title   string
	Widgets []*components.WheelWidget
	Focus   int
	Loading bool
	Err     error
	Source  source.Source
	Summary func() string
}

// Focused returns the widget keyboard input goes to.
func (p *Picker) Focused() *components.WheelWidget {
	if len(p.Widgets) == 0 {
		return nil
	}
	return p.Widgets[p.Focus]
}

// MoveFocus cycles the focused widget by delta.
func (p *Picker) MoveFocus(delta int) {
	if len(p.Widgets) == 0 {
		return
	}
	p.Focus = content.Wrap(p.Focus+delta, len(p.Widgets))
}

// Tick advances every animating wheel one frame and reports whether any
// needs another. A settling wheel may start another through a listener.
func (p *Picker) Tick() bool {
	for _, w := range p.Widgets {
		w.Tick()
	}
	return p.Animating()
}

// Animating reports whether any wheel is settling.
func (p *Picker) Animating() bool {
	for _, w := range p.Widgets {
		if w.Animating() {
			return true
		}
	}
	return false
}

// WidgetAt finds the widget under a mouse event and the event's row within
// it.
func (p *Picker) WidgetAt(msg tea.MouseMsg) (int, *components.WheelWidget, int) {
	for i, w := range p.Widgets {
		z := zone.Get(w.ID)
		if z == nil || !z.InBounds(msg) {
			continue
		}
		return i, w, msg.Y - z.StartY
	}
	return -1, nil, 0
}

func (p *Picker) Describe() string {
	if p.Summary != nil {
		return p.Summary()
	}
	labels := make([]string, len(p.Widgets))
	for i, w := range p.Widgets {
		labels[i] = w.Selection()
	}
	return strings.Join(labels, " / ")
}

// env is what every picker's wheels are built from.
type env struct {
	cfg        config.Config
	log        *slog.Logger
	events     *state.EventLog
	trajectory *components.TrajectoryWidget
	sound      dispatch.SoundPlayer
	now        func() time.Time
}

func (e env) widget(id, title string, cfg config.Config, items content.List) *components.WheelWidget {
	w := wheel.New(id, cfg, geometry.DefaultMonospace(), e.log)
	if e.events != nil {
		w.Observe(e.events.Sink(id))
	}
	if e.trajectory != nil {
		traj := e.trajectory
		w.Observe(dispatch.Listen(dispatch.Funcs{
			Scroll: func(offset int) { traj.Push(float64(offset)) },
		}))
	}
	if e.sound != nil {
		w.SetSoundPlayer(e.sound)
	}
	w.SetItems(items)
	return components.NewWheelWidget(id, title, w, e.cfg.UI.RowPixels)
}

func collect(src source.Source) content.List {
	list, err := src.Collect(context.Background())
	if err != nil {
		return content.List{}
	}
	return list
}

// newWeekdayPicker is a single cyclic wheel starting on today.
func newWeekdayPicker(e env) *Picker {
	w := e.widget("weekday", "Weekday", e.cfg.WithCyclic(true), collect(source.Weekdays()))
	// Monday first
	w.Wheel.SetSelectedItemPosition((int(e.now().Weekday())+6)%7, false, 0)
	return &Picker{
		Page:    state.PageWeekday,
		Title:   "Weekday Picker",
		Widgets: []*components.WheelWidget{w},
	}
}

// newProvincePicker links three wheels: picking a province reloads the
// cities, picking a city reloads the areas.
func newProvincePicker(e env, prov *source.Provinces) (*Picker, error) {
	if err := prov.Connect(context.Background()); err != nil {
		return nil, err
	}
	names, err := prov.Collect(context.Background())
	if err != nil {
		return nil, err
	}

	linked := e.cfg.WithCyclic(false)
	linked.Wheel.ResetSelectedPosition = true

	province := e.widget("province", "Province", e.cfg.WithCyclic(false), names)
	city := e.widget("city", "City", linked, content.List{})
	area := e.widget("area", "Area", linked, content.List{})

	city.Wheel.SetOnItemSelectedListener(dispatch.SelectedFunc(func(_ any, _ content.Item, position int) {
		area.Wheel.SetItems(prov.Areas(province.Wheel.SelectedItemPosition(), position))
	}))
	province.Wheel.SetOnItemSelectedListener(dispatch.SelectedFunc(func(_ any, _ content.Item, position int) {
		city.Wheel.SetItems(prov.Cities(position))
		area.Wheel.SetItems(prov.Areas(position, city.Wheel.SelectedItemPosition()))
	}))

	return &Picker{
		Page:    state.PageProvince,
		Title:   "Province / City / Area",
		Widgets: []*components.WheelWidget{province, city, area},
	}, nil
}

// crossesNoon reports whether moving the hour wheel from last to next
// passes twelve o'clock.
func crossesNoon(last, next int) bool {
	return (last == 11 && next == 12) || (last == 12 && next == 11)
}

// newClockPicker is a 12-hour clock. Scrolling the hour across twelve flips
// the AM/PM wheel.
func newClockPicker(e env) *Picker {
	now := e.now()
	noon := e.widget("noon", "", e.cfg.WithCyclic(false), collect(source.Noon()))
	hour := e.widget("hour", "Hour", e.cfg.WithCyclic(true), collect(source.Hours()))
	mcfg := e.cfg.WithCyclic(true)
	mcfg.Wheel.IntegerNeedFormat = true
	minute := e.widget("minute", "Minute", mcfg, collect(source.Minutes()))

	noon.Wheel.SetSelectedItemPosition(now.Hour()/12, false, 0)
	hour.Wheel.SetSelectedItemPosition((now.Hour()+11)%12, false, 0)
	minute.Wheel.SetSelectedItemPosition(now.Minute(), false, 0)

	lastHour := hour.Wheel.SelectedItemPosition() + 1
	hour.Wheel.SetOnItemSelectedListener(dispatch.SelectedFunc(func(_ any, item content.Item, _ int) {
		h, ok := item.Int()
		if !ok {
			return
		}
		if crossesNoon(lastHour, h) {
			next := 1 - noon.Wheel.SelectedItemPosition()
			noon.Wheel.SetSelectedItemPosition(next, true, 0)
		}
		lastHour = h
	}))

	return &Picker{
		Page:    state.PageClock,
		Title:   "12-hour Clock",
		Widgets: []*components.WheelWidget{noon, hour, minute},
		Focus:   1,
		Summary: func() string {
			return fmt.Sprintf("%s:%s %s", hour.Selection(), minute.Selection(), noon.Selection())
		},
	}
}

// newProcessPicker starts empty; its items arrive with a SourceLoadedMsg.
func newProcessPicker(e env) *Picker {
	w := e.widget("process", "Process", e.cfg.WithCyclic(false), content.List{})
	w.MinCols = 24
	return &Picker{
		Page:    state.PageProcesses,
		Title:   "Running Processes",
		Widgets: []*components.WheelWidget{w},
		Loading: true,
		Source:  source.NewProcesses(source.DefaultProcessLimit),
	}
}
