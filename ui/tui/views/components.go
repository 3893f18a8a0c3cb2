package views

import (
	"wheelview/internal/dispatch"
	"wheelview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ColorForState colors a scroll state badge.
func ColorForState(s dispatch.ScrollState) lipgloss.Style {
	sStyle := styles.StatusStyle
	switch s {
	case dispatch.Dragging:
		return sStyle.Foreground(lipgloss.Color("220")) // Gold
	case dispatch.Settling:
		return sStyle.Foreground(styles.Highlight)
	}
	return sStyle.Foreground(lipgloss.Color("46")) // Green
}
