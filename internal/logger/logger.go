// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L *slog.Logger = slog.New(slog.DiscardHandler)

var (
	levelVar = &slog.LevelVar{}

	mu      sync.Mutex
	logFile *os.File
)

const (
	logPrefix = "wheelview-"
	logSuffix = ".log"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.wheelview/logs
	Level   slog.Level // Minimum log level
	Stderr  bool       // Also mirror records to stderr (CLI use)
}

// Init configures logging. Call from main() before any log calls. A
// repeated Init closes the file opened by the previous one.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return closeFile()
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".wheelview", "logs")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	var w io.Writer = f
	if opts.Stderr {
		w = io.MultiWriter(os.Stderr, f)
	}

	levelVar.Set(opts.Level)
	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar}))
	if err := closeFile(); err != nil {
		L.Warn("closing previous log file", "error", err)
	}
	logFile = f
	return nil
}

// Close switches the global logger back to discarding and closes the log
// file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	L = slog.New(slog.DiscardHandler)
	return closeFile()
}

// closeFile closes the current log file. Callers hold mu.
func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// New builds a logger writing JSON records to w. Used by tests and the CLI.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLevel parses and applies the level of an initialized logger.
func SetRawLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// Or returns l when non-nil, otherwise the global logger.
func Or(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return L
}
