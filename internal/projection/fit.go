package projection

import "wheelview/internal/geometry"

// Fit is the per-item result of auto-fitting a label.
type Fit struct {
	Size              float64
	StartX            int
	CenterToBaselineY int
}

// FitText shrinks size one unit at a time until text fits the wheel width
// less the boundary margin. The margin may take at most a tenth of the
// width. startX and ctb are returned unchanged when there is no room at all.
func FitText(text string, m geometry.Measurer, size float64, width int, margin float64, align geometry.Align, startX, ctb int) Fit {
	drawWidth := float64(width)
	textMargin := margin * 2
	if textMargin > drawWidth/10 {
		drawWidth = drawWidth * 9 / 10
		textMargin = drawWidth / 10
	} else {
		drawWidth -= textMargin
	}
	if drawWidth <= 0 {
		return Fit{Size: size, StartX: startX, CenterToBaselineY: ctb}
	}

	fitted := size
	for m.MeasureText(text, fitted) > drawWidth {
		fitted--
		if fitted <= 0 {
			break
		}
	}
	if fitted < 0 {
		fitted = 0
	}

	half := textMargin / 2
	switch align {
	case geometry.AlignLeft:
		startX = int(half)
	case geometry.AlignRight:
		startX = int(float64(width) - half)
	default:
		startX = width / 2
	}
	return Fit{
		Size:              fitted,
		StartX:            startX,
		CenterToBaselineY: geometry.CenterToBaseline(m.Metrics(fitted)),
	}
}
