package main

import (
	"fmt"
	"os"

	"wheelview/internal/audio"
	"wheelview/internal/config"
	"wheelview/internal/logger"
	"wheelview/ui/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	opts := tui.Options{Log: logger.L}
	if cfg.Sound.Enabled {
		if p := audio.Open(cfg.Sound.File, logger.L); p != nil {
			defer p.Close()
			opts.Sound = p
		}
	}

	// Start the TUI application directly
	if err := tui.Start(cfg, opts); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
