package logger

import (
	"log/slog"
	"os"
)

// Logger is the process-global structured logger. main.go replaces it via
// Init; the fallback below keeps library code and tests safe when the
// application never configures it.
var Logger *slog.Logger

// init sets up a no-op logger for tests to avoid nil-pointer panics when
// the application code uses logger.Logger before the main package configures
// it. Production code still overrides this value in main.go.
func init() {
	if Logger == nil {
		// Minimal text handler that writes to stderr; level=INFO by default.
		Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}

// Init configures the global logger from the environment (LOG_LEVEL,
// LOG_FORMAT, SERVICE_NAME) and returns it.
func Init() *slog.Logger {
	config := LoadLoggerConfigFromEnv()
	Logger = newSlogLogger(os.Stdout, config.Format, config.Level, config.ServiceName)
	return Logger
}
