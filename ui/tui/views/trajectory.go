package views

import (
	"strings"

	"wheelview/ui/tui/state"
	"wheelview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// TrajectoryView charts recent scroll offsets next to a position gauge.
type TrajectoryView struct{}

func (v TrajectoryView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("Scroll Trajectory")

	info := lipgloss.NewStyle().
		Padding(1, 2).
		Render(props.Detail)

	content := lipgloss.JoinHorizontal(lipgloss.Top, props.ChartView, strings.Join(props.Panels, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		info,
		content,
		lipgloss.NewStyle().Padding(1, 2).Foreground(styles.Subtle).Render("Press 'b' to go back"),
	)
}

// Gauge draws position out of n as a bar of width cells.
func Gauge(position, n, width int) string {
	if n <= 0 || width <= 0 {
		return strings.Repeat("░", max(width, 0))
	}
	filled := width * (position + 1) / n
	filled = min(max(filled, 0), width)

	color := lipgloss.Color("46") // Green
	if position == 0 || position == n-1 {
		color = lipgloss.Color("220") // Gold at the ends
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}
