package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog is the local-dev logger: human-readable text with debug
// level and source locations. Prod environments use JSON handlers instead.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}
