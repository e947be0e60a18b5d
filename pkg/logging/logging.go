package logging

import (
	"os"
	"strings"

	"log/slog"
)

// New creates a slog.Logger for the given level and format ("json" or
// "text"). Logs go to stderr; stdout belongs to the MCP stdio transport.
func New(level, format string) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: l}

	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
