package components

import (
	"fmt"

	"wheelview/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TrajectoryCapacity is how many offset samples the chart keeps.
const TrajectoryCapacity = 120

// TrajectoryWidget charts the scroll offset of a wheel over recent frames.
type TrajectoryWidget struct {
	Chart   linechart.Model
	History []float64
	Width   int
	Height  int
}

func NewTrajectoryWidget(width, height int) *TrajectoryWidget {
	return &TrajectoryWidget{
		Chart:   linechart.New(width, height, 0, TrajectoryCapacity, 0, 1),
		History: make([]float64, 0, TrajectoryCapacity+1),
		Width:   width,
		Height:  height,
	}
}

func (c *TrajectoryWidget) Init() tea.Cmd {
	return nil
}

// Push appends a sample, dropping the oldest past capacity.
func (c *TrajectoryWidget) Push(offset float64) {
	c.History = append(c.History, offset)
	if len(c.History) > TrajectoryCapacity {
		c.History = c.History[1:]
	}
}

// Reset drops all samples.
func (c *TrajectoryWidget) Reset() { c.History = c.History[:0] }

// Bounds returns the lowest and highest sample, padded so a flat series
// still has a visible range.
func (c *TrajectoryWidget) Bounds() (lo, hi float64) {
	if len(c.History) == 0 {
		return 0, 1
	}
	lo, hi = c.History[0], c.History[0]
	for _, v := range c.History[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi-lo < 1 {
		hi = lo + 1
	}
	return lo, hi
}

func (c *TrajectoryWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *TrajectoryWidget) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *TrajectoryWidget) View() string {
	lo, hi := c.Bounds()
	c.Chart = linechart.New(c.Width, c.Height, 0, TrajectoryCapacity, lo, hi)
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Scroll offset (%d samples)", len(c.History))),
			c.Chart.View(),
		),
	)
}
