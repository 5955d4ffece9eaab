package vtable

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger.
// Off (Info) by default; SetDebugLogging(true) enables layout tracing.
var logLevel = new(slog.LevelVar)

// SetDebugLogging enables or disables debug records from the layout engine.
func SetDebugLogging(enabled bool) {
	if enabled {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// DebugLoggingEnabled reports whether debug records are emitted.
func DebugLoggingEnabled() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// tableLogger is the default logger for tables created without WithLogger.
var tableLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
