package views

import (
	"fmt"
	"math"

	"wheelview/ui/tui/components"
	"wheelview/ui/tui/state"
	"wheelview/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MenuOption is one demo page entry.
type MenuOption struct {
	Title string
	Hint  string
}

// MenuOptions are the demo pages in menu order.
var MenuOptions = []MenuOption{
	{"Weekday Picker", "cyclic, starts on today"},
	{"Province / City / Area", "three linked wheels"},
	{"12-hour Clock", "AM/PM follows the hour"},
	{"Running Processes", "loaded from the system"},
	{"Wheel Event Console", "every event, newest last"},
	{"Scroll Trajectory", "offset per frame"},
}

type MenuView struct{}

// Render lays the entries out like a flat wheel: the entry under the
// animated cursor pops out and the others dim with distance.
func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("WHEELVIEW // PICKER LAB")

	hovered := -1
	for i := range MenuOptions {
		if props.MouseY > 0 && zone.Get(MenuZone(i)).InBounds(mousePoint(props)) {
			hovered = i
		}
	}

	var entries []string
	for i, option := range MenuOptions {
		dist := math.Abs(float64(i) - props.AnimCursor)
		strength := math.Max(0, 1-dist)

		// cosine falloff over a quarter turn, as on a curved wheel
		angle := math.Min(dist/float64(len(MenuOptions)), 1) * math.Pi / 2
		alpha := int(255 * math.Max(math.Cos(angle), 0.35))

		border := styles.BaseColor
		switch {
		case strength > 0.1 || i == props.MenuCursor:
			border = styles.BrandColor
		case i == hovered:
			border = lipgloss.Color("#aaa")
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginLeft(2 + int(strength*2)).
			Width(46).
			Foreground(lipgloss.Color(components.Fade("#FFFFFF", "#000000", alpha))).
			Bold(i == props.MenuCursor)

		text := fmt.Sprintf("%02d. %-24s %s", i+1, option.Title, HintStyle.Render(option.Hint))
		entries = append(entries, zone.Mark(MenuZone(i), box.Render(text)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(styles.BrandColor).Render("DEMO PAGES"),
		CopyStyle.Render("Flick, drag or tap a wheel; arrows work too."),
		lipgloss.JoinVertical(lipgloss.Left, entries...),
	)

	footer := lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView)
	if s.Selection != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingLeft(2).Render("Last pick: "+styles.SelectionStyle.Render(s.Selection)),
			footer,
		)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		MenuBoxStyle.Render(content),
		footer,
	))
}

func mousePoint(p ViewProps) tea.MouseMsg {
	return tea.MouseMsg{X: p.MouseX, Y: p.MouseY}
}

// MenuZone is the mouse zone id of menu entry i.
func MenuZone(i int) string { return fmt.Sprintf("menu_%d", i) }

var (
	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(styles.BrandColor).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777")).
			Italic(true)
)
