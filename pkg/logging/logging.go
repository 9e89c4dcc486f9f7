// Package logging configures structured logging for the daemon.
//
// Usage:
//
//	logging.Setup("debug", "text")  // colored tint output on stderr
//	logging.Setup("info", "json")   // JSON lines, for log shippers
//
// An empty level falls back to the LOG_LEVEL environment variable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs the default slog logger writing to stderr.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New builds a logger. format "json" selects the JSON handler; anything else
// uses tint.
func New(w io.Writer, level, format string) *slog.Logger {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl := ParseLevel(level)

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    !isTerminal(w),
	}))
}

// ParseLevel maps debug, warn and error to their slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
