package main

import (
	"github.com/spf13/cobra"

	"wheelview/internal/audio"
	"wheelview/internal/logger"
	"wheelview/internal/source"
	"wheelview/ui/tui"
)

var demoProvinces string

func init() {
	cmd := newDemoCmd()
	cmd.Flags().StringVar(&demoProvinces, "provinces", "", "JSON province dataset replacing the built-in one")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open the interactive picker lab",
		Long: `The demo command opens the picker lab: a weekday wheel, a linked
province/city/area picker, a 12-hour clock, a live process picker, the event
console and the scroll trajectory chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	opts := tui.Options{Log: logger.L}
	if demoProvinces != "" {
		opts.Provinces = source.NewProvincesFile(demoProvinces)
	}
	if cfg.Sound.Enabled {
		if p := audio.Open(cfg.Sound.File, logger.L); p != nil {
			defer p.Close()
			opts.Sound = p
		}
	}
	return tui.Start(cfg, opts)
}
