package m3ui

import (
	"log/slog"
	"os"
)

// uiLogLevel controls the toolkit's log level.
// Default is LevelInfo, which suppresses Debug messages.
var uiLogLevel = new(slog.LevelVar)

// uiLogger is shared by every part of the toolkit.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// uiVerbose gates debug logging on hot paths.
func uiVerbose() bool {
	return uiLogLevel.Level() <= slog.LevelDebug
}
