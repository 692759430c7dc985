package logger

import (
	"log/slog"
	"os"
)

// Log is ready to use at import time so early failures are not lost;
// main calls Init to make the configuration explicit.
var Log = newLogger()

func Init() {
	Log = newLogger()
}

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}
