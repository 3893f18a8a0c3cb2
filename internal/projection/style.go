package projection

import (
	"fmt"
	"strings"

	"wheelview/internal/content"
	"wheelview/internal/geometry"
)

// ArcDirection picks where the cylinder's rotation pivot sits horizontally.
type ArcDirection int

const (
	ArcLeft ArcDirection = iota
	ArcCenter
	ArcRight
)

func (d ArcDirection) String() string {
	switch d {
	case ArcLeft:
		return "left"
	case ArcRight:
		return "right"
	default:
		return "center"
	}
}

// ParseArcDirection accepts left, center or right.
func ParseArcDirection(s string) (ArcDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ArcLeft, nil
	case "", "center", "centre":
		return ArcCenter, nil
	case "right":
		return ArcRight, nil
	}
	return ArcCenter, fmt.Errorf("unknown arc direction %q", s)
}

// DividerType controls the divider span.
type DividerType int

const (
	// DividerFill spans the whole clip width.
	DividerFill DividerType = iota
	// DividerWrap spans the widest label plus padding.
	DividerWrap
)

func (t DividerType) String() string {
	if t == DividerWrap {
		return "wrap"
	}
	return "fill"
}

// ParseDividerType accepts fill or wrap.
func ParseDividerType(s string) (DividerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return DividerFill, nil
	case "wrap":
		return DividerWrap, nil
	}
	return DividerFill, fmt.Errorf("unknown divider type %q", s)
}

// Cap is the divider line ending.
type Cap int

const (
	CapRound Cap = iota
	CapSquare
	CapButt
)

func (c Cap) String() string {
	switch c {
	case CapSquare:
		return "square"
	case CapButt:
		return "butt"
	default:
		return "round"
	}
}

// ParseCap accepts round, square or butt.
func ParseCap(s string) (Cap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	case "butt":
		return CapButt, nil
	}
	return CapRound, fmt.Errorf("unknown divider cap %q", s)
}

// Divider styles the two lines bounding the selected band.
type Divider struct {
	Show        bool
	Color       string
	Height      float64
	Type        DividerType
	WrapPadding float64
	Cap         Cap
}

// SelectedRect styles the rounded band behind the selected item.
type SelectedRect struct {
	Show        bool
	Color       string
	LeftRadius  float64
	RightRadius float64
}

// Curve holds the 3D parameters.
type Curve struct {
	Enabled      bool
	Direction    ArcDirection
	Factor       float64
	RefractRatio float64
}

const (
	DefaultArcFactor    = 0.75
	DefaultRefractRatio = 0.9
)

// ClampArcFactor keeps f in [0, 1].
func ClampArcFactor(f float64) float64 {
	return min(max(f, 0), 1)
}

// ClampRefractRatio caps r at 1. Negative ratios fall back to the default.
func ClampRefractRatio(r float64) float64 {
	switch {
	case r > 1:
		return 1
	case r < 0:
		return DefaultRefractRatio
	}
	return r
}

// Style is everything that affects how items and decorations look.
type Style struct {
	TextColor      string
	SelectedColor  string
	Align          geometry.Align
	BoundaryMargin float64
	AutoFit        bool
	Format         content.Format
	Curve          Curve
	Divider        Divider
	SelectedRect   SelectedRect
}

// DefaultStyle mirrors a freshly constructed wheel.
func DefaultStyle() Style {
	return Style{
		TextColor:     "#444444",
		SelectedColor: "#000000",
		Align:         geometry.AlignCenter,
		Format: content.Format{
			Integer: content.DefaultIntegerFormat,
		},
		Curve: Curve{
			Enabled:      true,
			Direction:    ArcCenter,
			Factor:       DefaultArcFactor,
			RefractRatio: DefaultRefractRatio,
		},
		Divider: Divider{
			Color:  "#000000",
			Height: 1,
			Type:   DividerFill,
			Cap:    CapRound,
		},
		SelectedRect: SelectedRect{
			Color: "#000000",
		},
	}
}
