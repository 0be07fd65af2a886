package neuralnet

import (
	"log/slog"
	"os"
	"strings"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler writing to stderr, at the
// level given by the NEURALNET_LOG_LEVEL environment variable (DEBUG, INFO, WARN or ERROR). It
// defaults to Info.
//
// The library itself never calls ConfigureLogging; commands should, at startup.
func ConfigureLogging() {
	logLevel.Set(slog.LevelInfo)

	switch strings.ToUpper(os.Getenv("NEURALNET_LOG_LEVEL")) {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
