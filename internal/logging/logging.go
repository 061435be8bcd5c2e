// Package logging sets up the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"calpick/internal/config"
)

// Setup installs the default logger described by cfg and returns it along
// with a close func for any opened log file. The TUI owns stdout, so output
// goes to stderr unless a file is configured.
func Setup(cfg *config.LogConfig, levelOverride string) (*slog.Logger, func() error, error) {
	if cfg == nil {
		cfg = &config.LogConfig{}
	}
	level := cfg.Level
	if strings.TrimSpace(levelOverride) != "" {
		level = levelOverride
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if path := strings.TrimSpace(cfg.File); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = f.Close
	}

	logger := New(w, level, cfg.Format)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps debug|info|warn|error to a slog level. Anything else,
// including "", is warn so interactive runs stay quiet.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
