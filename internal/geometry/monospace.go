package geometry

import "github.com/mattn/go-runewidth"

// Monospace measures text on a cell grid: each display column is
// Advance×size wide and the vertical metrics scale with size. Terminal hosts
// use it with a virtual pixel size per cell.
type Monospace struct {
	Advance float64
	Top     float64
	Ascent  float64
	Descent float64
	Bottom  float64
}

// DefaultMonospace has a 1:2 cell aspect and a glyph span of exactly one size
// unit, so a 16px font yields 8×16 cells.
func DefaultMonospace() Monospace {
	return Monospace{
		Advance: 0.5,
		Top:     -0.75,
		Ascent:  -0.7,
		Descent: 0.2,
		Bottom:  0.25,
	}
}

func (m Monospace) Metrics(size float64) FontMetrics {
	return FontMetrics{
		Top:     m.Top * size,
		Ascent:  m.Ascent * size,
		Descent: m.Descent * size,
		Bottom:  m.Bottom * size,
	}
}

func (m Monospace) MeasureText(text string, size float64) float64 {
	return float64(runewidth.StringWidth(text)) * m.Advance * size
}
