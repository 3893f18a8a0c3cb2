package views

import (
	"fmt"

	"wheelview/ui/tui/state"
	"wheelview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type PickerView struct{}

func (v PickerView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render(props.Title)

	var body string
	switch {
	case s.Err != nil:
		body = lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", s.Err))
	case props.Loading:
		body = lipgloss.NewStyle().Padding(1, 2).Render(props.SpinnerView + " loading...")
	default:
		panels := make([]string, len(props.Panels))
		for i, p := range props.Panels {
			panels[i] = lipgloss.NewStyle().MarginRight(1).Render(p)
		}
		body = lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}

	summary := lipgloss.NewStyle().PaddingLeft(2).Render(
		"Selected: " + styles.SelectionStyle.Render(props.Summary),
	)
	detail := lipgloss.NewStyle().PaddingLeft(2).Foreground(styles.Subtle).Render(props.Detail)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		summary,
		detail,
		"",
		styles.FooterStyle.Render(props.HelpView),
	))
}
