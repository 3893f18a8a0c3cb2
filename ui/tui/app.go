package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wheelview/internal/config"
	"wheelview/internal/content"
	"wheelview/internal/dispatch"
	"wheelview/internal/logger"
	"wheelview/internal/source"
	"wheelview/ui/tui/components"
	"wheelview/ui/tui/state"
	"wheelview/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg            config.Config
	log            *slog.Logger
	state          state.AppState
	pickers        map[state.Page]*Picker
	spinner        spinner.Model
	trajectory     *components.TrajectoryWidget
	keys           keyMap
	help           help.Model
	menuCursor     int
	animCursor     float64
	velocity       float64 // Physics velocity
	spring         harmonica.Spring
	animating      bool
	frame          time.Duration
	consoleScrollY int
	drag           *components.WheelWidget
	mouseX         int
	mouseY         int
	quitting       bool
	width          int
	height         int
	now            func() time.Time
}

// Messages
type AnimateMsg time.Time
type SourceLoadedMsg struct {
	Page  state.Page
	Items content.List
	Err   error
}

// Options wire the model to its collaborators. Zero values are usable.
type Options struct {
	Sound     dispatch.SoundPlayer
	Log       *slog.Logger
	Provinces *source.Provinces
	Now       func() time.Time
}

func InitialModel(cfg config.Config, opts Options) MainModel {
	cfg = cfg.Normalize()
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Provinces == nil {
		opts.Provinces = source.NewProvinces(nil)
	}
	log := logger.Or(opts.Log)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	events := state.NewEventLog()
	events.Now = opts.Now
	trajectory := components.NewTrajectoryWidget(30, 10)

	e := env{
		cfg:        cfg,
		log:        log,
		events:     events,
		trajectory: trajectory,
		sound:      opts.Sound,
		now:        opts.Now,
	}

	pickers := map[state.Page]*Picker{
		state.PageWeekday:   newWeekdayPicker(e),
		state.PageClock:     newClockPicker(e),
		state.PageProcesses: newProcessPicker(e),
	}
	prov, err := newProvincePicker(e, opts.Provinces)
	if err != nil {
		log.Warn("province picker unavailable", "error", err)
		prov = &Picker{Page: state.PageProvince, Title: "Province / City / Area", Err: err}
	}
	pickers[state.PageProvince] = prov

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		cfg:        cfg,
		log:        log,
		pickers:    pickers,
		spinner:    s,
		trajectory: trajectory,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spring:     spring,
		frame:      pickers[state.PageWeekday].Widgets[0].Wheel.FrameDuration(),
		now:        opts.Now,
		state: state.AppState{
			CurrentPage: state.PageMenu,
			LastPicker:  state.PageWeekday,
			Log:         events,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	m.animating = true
	cmds := []tea.Cmd{m.spinner.Tick, animateCmd(m.frame)}
	for page, p := range m.pickers {
		if p.Loading && p.Source != nil {
			cmds = append(cmds, loadSourceCmd(page, p.Source))
		}
	}
	return tea.Batch(cmds...)
}

// Commands
func animateCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadSourceCmd(page state.Page, src source.Source) tea.Cmd {
	return func() tea.Msg {
		list, err := source.Load(context.Background(), src)
		return SourceLoadedMsg{Page: page, Items: list, Err: err}
	}
}

// startAnimating arms the frame loop unless it is already running.
func (m *MainModel) startAnimating() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd(m.frame)
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case SourceLoadedMsg:
		return m.handleSourceLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) currentPicker() *Picker {
	return m.pickers[m.state.CurrentPage]
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state.CurrentPage == state.PageMenu {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.menuCursor > 0 {
				m.menuCursor--
			}
			return m, m.startAnimating()
		case key.Matches(msg, m.keys.Down):
			if m.menuCursor < len(views.MenuOptions)-1 {
				m.menuCursor++
			}
			return m, m.startAnimating()
		case key.Matches(msg, m.keys.Enter):
			m.navigateTo(m.menuCursor)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		cmd := m.releaseDrag()
		m.state.CurrentPage = state.PageMenu
		m.consoleScrollY = 0
		return m, tea.Batch(cmd, m.startAnimating())
	}

	if m.state.CurrentPage == state.PageConsole {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.consoleScrollY > 0 {
				m.consoleScrollY--
			}
		case key.Matches(msg, m.keys.Down):
			m.consoleScrollY++
		}
		return m, nil
	}

	p := m.currentPicker()
	if p == nil || p.Focused() == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if p.Focused().Step(-1) {
			return m, m.startAnimating()
		}
	case key.Matches(msg, m.keys.Down):
		if p.Focused().Step(1) {
			return m, m.startAnimating()
		}
	case key.Matches(msg, m.keys.Left):
		p.MoveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		p.MoveFocus(1)
	case key.Matches(msg, m.keys.Enter):
		m.state.Selection = p.Title + ": " + p.Describe()
		m.state.LastUpdate = m.now()
		m.state.Log.Add("confirmed %s", m.state.Selection)
	}
	return m, nil
}

func (m *MainModel) navigateTo(cursor int) {
	pages := []state.Page{
		state.PageWeekday,
		state.PageProvince,
		state.PageClock,
		state.PageProcesses,
		state.PageConsole,
		state.PageTrajectory,
	}
	if cursor < 0 || cursor >= len(pages) {
		return
	}
	m.state.CurrentPage = pages[cursor]
	if _, ok := m.pickers[pages[cursor]]; ok {
		m.state.LastPicker = pages[cursor]
	}
}

func (m *MainModel) springAtRest() bool {
	const eps = 1e-3
	d := m.animCursor - float64(m.menuCursor)
	return d < eps && d > -eps && m.velocity < eps && m.velocity > -eps
}

// handleAnimateMsg advances the menu spring and every settling wheel, and
// re-arms itself only while something is still moving.
func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.animCursor, m.velocity = m.spring.Update(m.animCursor, m.velocity, float64(m.menuCursor))

	more := !m.springAtRest()
	for _, p := range m.pickers {
		if p.Tick() {
			more = true
		}
	}
	if more {
		return m, animateCmd(m.frame)
	}
	m.animating = false
	return m, nil
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := msg.Width/2 - 6
	if newW > 10 {
		m.trajectory.Resize(newW, 10)
	}
	return m, nil
}

func (m *MainModel) handleSourceLoadedMsg(msg SourceLoadedMsg) (tea.Model, tea.Cmd) {
	p, ok := m.pickers[msg.Page]
	if !ok {
		return m, nil
	}
	p.Loading = false
	if msg.Err != nil {
		p.Err = msg.Err
		m.log.Warn("source load failed", "page", p.Title, "error", msg.Err)
		return m, nil
	}
	for _, w := range p.Widgets {
		w.Wheel.SetItems(msg.Items)
	}
	m.state.Log.Add("%s: loaded %d items", p.Title, msg.Items.Len())
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if m.state.CurrentPage == state.PageMenu {
		if msg.Action == tea.MouseActionRelease {
			for i := range views.MenuOptions {
				if zone.Get(views.MenuZone(i)).InBounds(msg) {
					m.menuCursor = i
					m.navigateTo(i)
					return m, nil
				}
			}
		}
		return m, nil
	}

	p := m.currentPicker()
	if p == nil || p.Loading {
		return m, nil
	}
	now := m.now()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if _, w, _ := p.WidgetAt(msg); w != nil && w.Step(-1) {
			return m, m.startAnimating()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if _, w, _ := p.WidgetAt(msg); w != nil && w.Step(1) {
			return m, m.startAnimating()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if i, w, row := p.WidgetAt(msg); w != nil {
			p.Focus = i
			m.drag = w
			w.Press(row, now)
		}
	case msg.Action == tea.MouseActionMotion && m.drag != nil:
		m.drag.Drag(m.dragRow(msg), now)
	case msg.Action == tea.MouseActionRelease && m.drag != nil:
		w := m.drag
		m.drag = nil
		if w.Release(m.dragRow(msg), now) {
			return m, m.startAnimating()
		}
	}
	return m, nil
}

// dragRow is the event row relative to the dragged widget, even when the
// pointer has left it.
func (m *MainModel) dragRow(msg tea.MouseMsg) int {
	z := zone.Get(m.drag.ID)
	if z == nil {
		return 0
	}
	return msg.Y - z.StartY
}

func (m *MainModel) releaseDrag() tea.Cmd {
	if m.drag == nil {
		return nil
	}
	w := m.drag
	m.drag = nil
	if w.Cancel() {
		return m.startAnimating()
	}
	return nil
}

func (m *MainModel) pickerProps(p *Picker) views.ViewProps {
	panels := make([]string, len(p.Widgets))
	for i, w := range p.Widgets {
		panels[i] = w.Render(i == p.Focus)
	}
	detail := ""
	if f := p.Focused(); f != nil {
		detail = fmt.Sprintf("%s • offset %d • %s", f.ID, f.Wheel.ScrollOffset(), f.Wheel.ScrollState())
	}
	return views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		Title:       p.Title,
		Panels:      panels,
		Summary:     p.Describe(),
		Detail:      detail,
		Loading:     p.Loading,
		SpinnerView: m.spinner.View(),
		HelpView:    m.help.View(m.keys),
	}
}

func (m *MainModel) trajectoryView() string {
	detail := "No wheel yet"
	var panels []string
	if p := m.pickers[m.state.LastPicker]; p != nil {
		if f := p.Focused(); f != nil {
			w := f.Wheel
			detail = fmt.Sprintf("Wheel: %s\nOffset: %d\nState: %s",
				f.ID, w.ScrollOffset(), views.ColorForState(w.ScrollState()).Render(w.ScrollState().String()))
			n := w.Items().Len()
			panels = append(panels, lipgloss.NewStyle().Padding(1, 2).Render(
				fmt.Sprintf("Position %d/%d\n%s", w.SelectedItemPosition()+1, n, views.Gauge(w.SelectedItemPosition(), n, 20)),
			))
		}
	}
	return views.RenderTrajectory(m.state, m.trajectory.View(), detail, panels, m.width, m.height)
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		return views.RenderMenu(m.state, m.width, m.height, m.menuCursor, m.animCursor, m.mouseX, m.mouseY, m.help.View(m.keys))
	case state.PageConsole:
		return views.RenderRawConsole(m.state, m.width, m.height, m.consoleScrollY)
	case state.PageTrajectory:
		return m.trajectoryView()
	}

	if p := m.currentPicker(); p != nil {
		s := m.state
		s.Err = p.Err
		return views.RenderPicker(s, m.pickerProps(p))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("Nothing here\n\nPress 'b' to go back"),
	)
}

func Start(cfg config.Config, opts Options) error {
	m := InitialModel(cfg, opts)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
