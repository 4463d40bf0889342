package logger

import (
	"io"
	"log/slog"
)

// Setup installs a text slog handler writing to w as the default logger.
// Verbose lowers the level to Debug.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}
