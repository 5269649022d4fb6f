// ABOUTME: This file provides context-aware structured logging with JSON output
// ABOUTME: Supports request ID and trace ID propagation through context.Context
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TraceIDKey   ContextKey = "trace_id"
	OperationKey ContextKey = "operation"
	ServiceKey   ContextKey = "service"
)

type ContextLogger struct {
	logger      *slog.Logger
	serviceName string
}

type LoggerConfig struct {
	Level       string
	Format      string
	ServiceName string
}

func LoadLoggerConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Format:      getEnvOrDefault("LOG_FORMAT", "json"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "news-hub"),
	}
}

func NewContextLogger(output io.Writer, format, level string) *ContextLogger {
	return NewContextLoggerWithConfig(output, &LoggerConfig{
		Level:       level,
		Format:      format,
		ServiceName: "news-hub",
	})
}

// NewContextLoggerWithConfig creates a ContextLogger based on configuration.
func NewContextLoggerWithConfig(output io.Writer, config *LoggerConfig) *ContextLogger {
	return &ContextLogger{
		logger:      newSlogLogger(output, config.Format, config.Level, config.ServiceName),
		serviceName: config.ServiceName,
	}
}

// newSlogLogger builds the house slog logger: lowercase level values,
// time/level/msg field names, and service/version attributes on every record.
func newSlogLogger(output io.Writer, format, level, serviceName string) *slog.Logger {
	if output == nil {
		output = os.Stdout
	}

	options := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(lv.String()))}
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}

	return slog.New(handler).With("service", serviceName, "version", "1.0.0")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithContext returns a logger enriched with request_id, trace_id, and
// operation values carried by ctx.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	var fields []any
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}
	if traceID := ctx.Value(TraceIDKey); traceID != nil {
		fields = append(fields, "trace_id", traceID)
	}
	if operation := ctx.Value(OperationKey); operation != nil {
		fields = append(fields, "operation", operation)
	}

	if len(fields) > 0 {
		return cl.logger.With(fields...)
	}

	return cl.logger
}

// Logger exposes the underlying slog logger for callers that do not carry
// a context.
func (cl *ContextLogger) Logger() *slog.Logger {
	return cl.logger
}

// Context helper functions
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
