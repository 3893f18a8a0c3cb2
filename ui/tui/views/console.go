package views

import (
	"fmt"
	"strings"

	"wheelview/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleView lists recent wheel events, newest last.
type ConsoleView struct{}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("Wheel Event Console")

	availableHeight := props.Height - lipgloss.Height(header) - 4
	if availableHeight < 1 {
		availableHeight = 1
	}

	var lines []string
	if s.Log != nil {
		lines = s.Log.Lines
	}
	totalLines := len(lines)

	scrollY := ClampScroll(props.ScrollY, totalLines, availableHeight)
	end := min(scrollY+availableHeight, totalLines)
	viewContent := strings.Join(lines[scrollY:end], "\n")
	if totalLines == 0 {
		viewContent = "No events yet. Scroll a wheel on one of the picker pages."
	}

	box := lipgloss.NewStyle().
		Width(max(props.Width-4, 1)).
		Height(availableHeight).
		Padding(0, 1).
		Render(viewContent)

	footerText := fmt.Sprintf("Scroll: %d/%d • Press 'b' to go back", scrollY, totalLines)
	if totalLines > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).Render(footerText),
	)
}

// ClampScroll keeps a scroll position within the lines that can be shown.
func ClampScroll(scrollY, total, height int) int {
	if scrollY > total-height {
		scrollY = total - height
	}
	if scrollY < 0 {
		scrollY = 0
	}
	return scrollY
}
