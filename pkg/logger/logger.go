package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is usable before Init; Init swaps in the configured handler.
var Log = slog.Default()

// Init configures the package-level logger. Production gets JSON lines for
// log aggregation; development gets the friendlier text handler.
func Init(level string, production bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	Log = slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
