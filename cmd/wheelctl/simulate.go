package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wheelview/internal/config"
	"wheelview/internal/geometry"
	"wheelview/internal/logger"
	"wheelview/internal/source"
	"wheelview/internal/trace"
	"wheelview/internal/wheel"
	"wheelview/ui/console"
	"wheelview/ui/tui/components"
)

type simulateOptions struct {
	script    string
	tap       int
	selectPos int
	animate   bool
	cyclic    bool
	curved    bool
	visible   int
	scroll    bool
	chart     bool
	maxFrames int
	timeout   time.Duration
}

func init() {
	rootCmd.AddCommand(newSimulateCmd())
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate <source>",
		Short: "Replay a gesture script against a wheel and print its events",
		Long: `The simulate command fills a wheel from a content source, plays a
gesture script against it on a virtual clock and prints every event the
wheel emitted along with the final selection.

Without --script, --tap or --select a fast upward flick is played.

Example:
  wheelctl simulate hours
  wheelctl simulate weekdays --cyclic --select 5 --animate
  wheelctl simulate minutes --script "down 60; move 20 +16ms; up 20 +16ms"
  wheelctl simulate years --script @gestures.txt --chart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg
			flags := cmd.Flags()
			if flags.Changed("cyclic") {
				c = c.WithCyclic(opts.cyclic)
			}
			if flags.Changed("curved") {
				c = c.WithCurved(opts.curved)
			}
			if flags.Changed("visible") {
				c = c.WithVisibleItems(opts.visible)
			}
			if !flags.Changed("tap") {
				opts.tap = -1
			}
			if !flags.Changed("select") {
				opts.selectPos = -1
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return runSimulate(ctx, cmd.OutOrStdout(), args[0], c, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.script, "script", "s", "", "Gesture script, or @file to read one")
	flags.IntVar(&opts.tap, "tap", 0, "Tap at this y coordinate")
	flags.IntVar(&opts.selectPos, "select", 0, "Select this position")
	flags.BoolVar(&opts.animate, "animate", false, "Animate --select")
	flags.BoolVar(&opts.cyclic, "cyclic", false, "Wrap around at both ends")
	flags.BoolVar(&opts.curved, "curved", true, "Draw the wheel curved")
	flags.IntVar(&opts.visible, "visible", 5, "Visible item count")
	flags.BoolVar(&opts.scroll, "scroll", false, "Include per-frame scroll events")
	flags.BoolVar(&opts.chart, "chart", false, "Chart the scroll offset after the run")
	flags.IntVar(&opts.maxFrames, "max-frames", trace.DefaultMaxFrames, "Abort after this many frames")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Abort the run after this long")
	return cmd
}

func runSimulate(ctx context.Context, out io.Writer, name string, c config.Config, opts *simulateOptions) error {
	src, err := source.ByName(name)
	if err != nil {
		return err
	}
	items, err := source.Load(ctx, src)
	if err != nil {
		return err
	}
	printVerbose("Loaded %d items from %s\n", items.Len(), src.Name())

	w := wheel.New(src.Name(), c, geometry.DefaultMonospace(), logger.L)
	w.SetItems(items)
	w.Layout(w.MeasuredSize())

	script, err := simulateScript(w, opts)
	if err != nil {
		return err
	}
	logger.L.Debug("simulating", "source", src.Name(), "items", items.Len(), "script", script.String())

	t, err := trace.Run(ctx, w, script, trace.Options{MaxFrames: opts.maxFrames})
	if err != nil {
		return fmt.Errorf("simulate %s: %w", src.Name(), err)
	}
	console.Print(out, t, console.Options{Scroll: opts.scroll, Plain: noColor})

	if opts.chart {
		chart := components.NewTrajectoryWidget(60, 12)
		for _, v := range t.Series() {
			chart.Push(v)
		}
		fmt.Fprintln(out, chart.View())
	}
	return nil
}

// simulateScript picks the script from the options, in order: --script,
// --select, --tap, then a default flick across the draw area.
func simulateScript(w *wheel.Wheel, opts *simulateOptions) (trace.Script, error) {
	switch {
	case opts.script != "":
		text := opts.script
		if path, ok := strings.CutPrefix(text, "@"); ok {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read script: %w", err)
			}
			text = string(data)
		}
		return trace.Parse(text)
	case opts.selectPos >= 0:
		return trace.Script{{Kind: trace.StepSelect, Position: opts.selectPos, Animate: opts.animate}}, nil
	case opts.tap >= 0:
		return trace.Tap(opts.tap), nil
	default:
		b := w.Bounds()
		return trace.Flick(b.Draw.Bottom-1, b.Draw.Top, 4, 10*time.Millisecond), nil
	}
}
