package console

import (
	"fmt"
	"io"
	"strings"

	"wheelview/internal/dispatch"
	"wheelview/internal/trace"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Options control what Print includes.
type Options struct {
	// Scroll includes per-frame scroll events, which are skipped by default.
	Scroll bool
	// Plain drops the ANSI colors.
	Plain bool
}

// Print renders a run to the writer in a compact format.
func Print(w io.Writer, t *trace.Trace, opts Options) {
	paint := func(color, s string) string {
		if opts.Plain {
			return s
		}
		return color + s + colorReset
	}

	fmt.Fprintf(w, "%s\n", paint(colorCyan, "■ WHEEL TRACE "+strings.ToUpper(t.Wheel)))

	fmt.Fprintf(w, "%s\n", paint(colorCyan, "─ Script"))
	for _, st := range t.Script {
		fmt.Fprintf(w, "  %s\n", st)
	}

	fmt.Fprintf(w, "%s\n", paint(colorCyan, "─ Events"))
	for _, e := range t.Events {
		if e.Kind == dispatch.KindScroll && !opts.Scroll {
			continue
		}
		label := e.Kind.String()
		dots := strings.Repeat("·", max(16-len(label), 1))
		fmt.Fprintf(w, "  %s%s %s\n", paint(colorFor(e), label), paint(colorCyan, dots), detail(e))
	}

	fmt.Fprintf(w, "%s: selected %d (%s) | frames: %d | elapsed: %s\n\n",
		paint(colorCyan, "─ Summary"), t.Selected, t.Label, t.Frames, t.Elapsed)
}

func detail(e dispatch.Event) string {
	switch e.Kind {
	case dispatch.KindScroll:
		return fmt.Sprintf("%d", e.Offset)
	case dispatch.KindItemChanged:
		return fmt.Sprintf("%d → %d", e.Old, e.New)
	case dispatch.KindSelected:
		return fmt.Sprintf("%d", e.Position)
	case dispatch.KindStateChanged:
		return e.State.String()
	default:
		return ""
	}
}

func colorFor(e dispatch.Event) string {
	switch e.Kind {
	case dispatch.KindSelected:
		return colorGreen
	case dispatch.KindItemChanged:
		return colorYellow
	case dispatch.KindStateChanged:
		if e.State == dispatch.Idle {
			return colorGreen
		}
		return colorRed
	default:
		return colorCyan
	}
}
