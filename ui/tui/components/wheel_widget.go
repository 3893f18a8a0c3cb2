package components

import (
	"time"

	"wheelview/internal/wheel"
	"wheelview/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
)

// WheelWidget hosts a wheel on a terminal cell grid. One row is RowPixels
// virtual pixels tall and half as wide.
type WheelWidget struct {
	ID        string
	Title     string
	Wheel     *wheel.Wheel
	RowPixels int
	MinRows   int
	MinCols   int

	grid  Grid
	dirty bool
}

func NewWheelWidget(id, title string, w *wheel.Wheel, rowPixels int) *WheelWidget {
	if rowPixels < 2 {
		rowPixels = 2
	}
	c := &WheelWidget{
		ID:        id,
		Title:     title,
		Wheel:     w,
		RowPixels: rowPixels,
		MinRows:   5,
		MinCols:   8,
		dirty:     true,
	}
	w.SetHost(c)
	return c
}

// RequestLayout marks the grid stale; it is rebuilt before the next use.
func (c *WheelWidget) RequestLayout() { c.dirty = true }

// Invalidate is a no-op: bubbletea repaints after every update.
func (c *WheelWidget) Invalidate() {}

// Layout sizes the grid from the wheel's measured size and lays the wheel
// out on it.
func (c *WheelWidget) Layout() {
	cellH := c.RowPixels
	cellW := max(cellH/2, 1)
	mw, mh := c.Wheel.MeasuredSize()
	rows := max(ceilDiv(mh, cellH), c.Wheel.VisibleItems(), c.MinRows)
	cols := max(ceilDiv(mw, cellW), runewidth.StringWidth(c.Title), c.MinCols)
	c.grid = Grid{Rows: rows, Cols: cols, CellW: cellW, CellH: cellH}
	c.Wheel.Layout(c.grid.Pixels())
	c.dirty = false
}

func (c *WheelWidget) ensureLayout() {
	if c.dirty {
		c.Layout()
	}
}

// Grid returns the current cell grid.
func (c *WheelWidget) Grid() Grid {
	c.ensureLayout()
	return c.grid
}

// Press starts a drag at row.
func (c *WheelWidget) Press(row int, at time.Time) {
	c.ensureLayout()
	c.Wheel.PointerDown(c.grid.RowCenter(row), at)
}

// Drag follows the pointer to row.
func (c *WheelWidget) Drag(row int, at time.Time) {
	c.Wheel.PointerMove(c.grid.RowCenter(row), at)
}

// Release ends the drag. It reports whether frames must be scheduled.
func (c *WheelWidget) Release(row int, at time.Time) bool {
	return c.Wheel.PointerUp(c.grid.RowCenter(row), at)
}

// Cancel abandons a drag.
func (c *WheelWidget) Cancel() bool { return c.Wheel.PointerCancel() }

// Step animates the selection by delta items, crossing the seam of cyclic
// wheels.
func (c *WheelWidget) Step(delta int) bool {
	return c.Wheel.ScrollItems(delta, 0)
}

// Tick advances the wheel one frame.
func (c *WheelWidget) Tick() bool { return c.Wheel.Tick() }

// Animating reports whether the wheel is settling.
func (c *WheelWidget) Animating() bool { return c.Wheel.IsAnimating() }

// Selection is the label of the selected item, or "-" for an empty wheel.
func (c *WheelWidget) Selection() string {
	it, ok := c.Wheel.SelectedItemData()
	if !ok {
		return "-"
	}
	return c.Wheel.Style().Format.Label(it)
}

// Mark wraps the rendered canvas in this widget's mouse zone.
func (c *WheelWidget) Mark() string {
	c.ensureLayout()
	return zone.Mark(c.ID, RenderFrame(c.Wheel.Frame(), c.Wheel.Bounds(), c.grid))
}

// Render draws the titled, bordered widget.
func (c *WheelWidget) Render(focused bool) string {
	border := styles.Subtle
	if focused {
		border = styles.Highlight
	}
	title := lipgloss.NewStyle().Bold(focused).Foreground(border).Render(c.Title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, c.Mark()))
}

func (c *WheelWidget) Init() tea.Cmd {
	return nil
}

func (c *WheelWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *WheelWidget) View() string {
	return c.Render(false)
}
