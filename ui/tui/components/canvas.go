package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"wheelview/internal/geometry"
	"wheelview/internal/projection"
)

// Grid maps the wheel's virtual pixels onto terminal cells.
type Grid struct {
	Rows, Cols   int
	CellW, CellH int
	Background   string
}

// Pixels returns the virtual size of the grid.
func (g Grid) Pixels() (width, height int) { return g.Cols * g.CellW, g.Rows * g.CellH }

// RowCenter is the virtual y at the middle of row.
func (g Grid) RowCenter(row int) int { return row*g.CellH + g.CellH/2 }

// RowAt maps a virtual y to its row.
func (g Grid) RowAt(y float64) int { return int(math.Floor(y / float64(g.CellH))) }

type cell struct {
	r         rune
	fg, bg    string
	bold      bool
	underline bool
}

type candidate struct {
	op     projection.DrawOp
	inClip bool
}

// RenderFrame paints f into rows of styled text. Each row shows at most one
// item: the pass whose clip holds the row center wins, then the one facing
// the viewer most.
func RenderFrame(f projection.Frame, b geometry.Bounds, g Grid) string {
	if g.Rows <= 0 || g.Cols <= 0 || g.CellH <= 0 || g.CellW <= 0 {
		return ""
	}
	cells := make([][]cell, g.Rows)
	for r := range cells {
		cells[r] = make([]cell, g.Cols)
		for c := range cells[r] {
			cells[r][c] = cell{r: ' ', bg: g.Background}
		}
	}

	if rect := f.SelectedRect; rect != nil {
		for r := 0; r < g.Rows; r++ {
			if y := g.RowCenter(r); y < rect.Rect.Top || y >= rect.Rect.Bottom {
				continue
			}
			c0, c1 := rect.Rect.Left/g.CellW, ceilDiv(rect.Rect.Right, g.CellW)
			for c := max(c0, 0); c < min(c1, g.Cols); c++ {
				cells[r][c].bg = rect.Color
			}
		}
	}

	for _, d := range f.Dividers {
		// lines sit on row edges; underline the row above the edge
		r := d.Y/g.CellH - 1
		if d.Y%g.CellH >= g.CellH/2 {
			r = d.Y / g.CellH
		}
		if r < 0 || r >= g.Rows {
			continue
		}
		c0, c1 := d.X0/g.CellW, ceilDiv(d.X1, g.CellW)
		for c := max(c0, 0); c < min(c1, g.Cols); c++ {
			cells[r][c].underline = true
			if cells[r][c].fg == "" {
				cells[r][c].fg = d.Color
			}
		}
	}

	best := make([]*candidate, g.Rows)
	for _, op := range f.Ops {
		r := g.RowAt(opCenter(op, b))
		if r < 0 || r >= g.Rows {
			continue
		}
		y := g.RowCenter(r)
		c := &candidate{op: op, inClip: y >= op.Clip.Top && y < op.Clip.Bottom}
		if prev := best[r]; prev == nil || better(c, prev) {
			best[r] = c
		}
	}

	for r, c := range best {
		if c == nil {
			continue
		}
		bg := cells[r][g.Cols/2].bg
		fg := Fade(c.op.Color, bg, c.op.Alpha)
		putText(cells[r], c.op, g, fg, c.op.Role == projection.RoleSelected)
	}

	lines := make([]string, g.Rows)
	for r := range cells {
		lines[r] = renderRow(cells[r])
	}
	return strings.Join(lines, "\n")
}

func better(a, b *candidate) bool {
	if a.inClip != b.inClip {
		return a.inClip
	}
	return a.op.Alpha > b.op.Alpha
}

func opCenter(op projection.DrawOp, b geometry.Bounds) float64 {
	if op.Transform != nil {
		return op.Transform.PivotY
	}
	return float64(b.CenterY + op.OffsetY)
}

func putText(row []cell, op projection.DrawOp, g Grid, fg string, bold bool) {
	width := runewidth.StringWidth(op.Text)
	anchor := op.X / g.CellW
	start := anchor
	switch op.Align {
	case geometry.AlignCenter:
		start = anchor - width/2
	case geometry.AlignRight:
		start = anchor - width
	}
	col := start
	for _, r := range op.Text {
		w := runewidth.RuneWidth(r)
		if col >= 0 && col+w <= len(row) {
			row[col].r = r
			row[col].fg = fg
			row[col].bold = bold
			for k := 1; k < w; k++ {
				row[col+k].r = 0
			}
		}
		col += w
	}
}

func renderRow(row []cell) string {
	var b strings.Builder
	i := 0
	for i < len(row) {
		j := i
		var run strings.Builder
		for j < len(row) && sameStyle(row[i], row[j]) {
			if row[j].r != 0 {
				run.WriteRune(row[j].r)
			}
			j++
		}
		b.WriteString(styleOf(row[i]).Render(run.String()))
		i = j
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold && a.underline == b.underline
}

func styleOf(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		s = s.Background(lipgloss.Color(c.bg))
	}
	if c.bold {
		s = s.Bold(true)
	}
	if c.underline {
		s = s.Underline(true)
	}
	return s
}

// Fade blends fg toward bg as alpha drops from 255 to 0. Unparsable colors
// are returned unchanged.
func Fade(fg, bg string, alpha int) string {
	if alpha >= 255 {
		return fg
	}
	front, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	back, err := colorful.Hex(bg)
	if err != nil {
		back = colorful.Color{}
	}
	t := 1 - float64(max(alpha, 0))/255
	return front.BlendRgb(back, t).Clamped().Hex()
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
