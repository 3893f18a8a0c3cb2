package views

import (
	"wheelview/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	// Component States
	MenuCursor  int
	AnimCursor  float64
	SpinnerView string
	ChartView   string
	HelpView    string
	ScrollY     int

	// Picker pages
	Title   string
	Panels  []string
	Summary string
	Loading bool
	Detail  string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
