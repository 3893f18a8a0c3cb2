package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is the interface that all UI components must implement.
// It is similar to tea.Model but tailored for widgets.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Animated is a component that needs frames. Tick advances one frame and
// reports whether the component is still moving.
type Animated interface {
	Component
	Tick() bool
	Animating() bool
}

var (
	_ Component = (*TrajectoryWidget)(nil)
	_ Animated  = (*WheelWidget)(nil)
)
