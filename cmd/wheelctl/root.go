package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wheelview/internal/config"
	"wheelview/internal/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wheelctl",
	Short: "Drive and inspect picker wheels from the terminal",
	Long: `wheelctl hosts picker wheels in the terminal. It runs the interactive
picker lab, replays scripted gestures against a wheel and prints the events
they produce, and manages the TOML configuration shared by both.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/wheelview/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log records to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and initializes logging before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled || verbose,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
		Stderr:  verbose,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.L.Debug("config loaded", "path", configPath, "sound", cfg.Sound.Enabled)
	return nil
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
