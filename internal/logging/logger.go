package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level picks the stdout level: debug in development, info elsewhere.
func Level(development bool) slog.Level {
	if development {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewStdoutHandler is the JSON handler every process writes to.
func NewStdoutHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup initializes the global slog logger with JSON output to stdout.
func Setup(development bool) {
	slog.SetDefault(slog.New(NewStdoutHandler(os.Stdout, Level(development))))
}
