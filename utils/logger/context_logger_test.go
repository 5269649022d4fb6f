// ABOUTME: This file tests context-aware logging behavior
// ABOUTME: Ensures request ID, trace ID, and operation context are preserved
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextLogger_WithContext(t *testing.T) {
	tests := map[string]struct {
		setupContext   func() context.Context
		expectedFields map[string]string
	}{
		"request ID context": {
			setupContext: func() context.Context {
				return WithRequestID(context.Background(), "req-123")
			},
			expectedFields: map[string]string{
				"request_id": "req-123",
			},
		},
		"trace ID context": {
			setupContext: func() context.Context {
				return WithTraceID(context.Background(), "trace-456")
			},
			expectedFields: map[string]string{
				"trace_id": "trace-456",
			},
		},
		"operation context": {
			setupContext: func() context.Context {
				return WithOperation(context.Background(), "feed-resolve")
			},
			expectedFields: map[string]string{
				"operation": "feed-resolve",
			},
		},
		"combined context": {
			setupContext: func() context.Context {
				ctx := WithRequestID(context.Background(), "req-789")
				ctx = WithTraceID(ctx, "trace-789")
				return WithOperation(ctx, "ingest")
			},
			expectedFields: map[string]string{
				"request_id": "req-789",
				"trace_id":   "trace-789",
				"operation":  "ingest",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewContextLogger(&buf, "json", "info")

			logger := cl.WithContext(test.setupContext())
			logger.Info("test message")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, "test message", entry["msg"])
			assert.Equal(t, "info", entry["level"])
			assert.Equal(t, "news-hub", entry["service"])
			for key, want := range test.expectedFields {
				assert.Equal(t, want, entry[key], "field %q", key)
			}
		})
	}
}

func TestContextLogger_PlainContext(t *testing.T) {
	t.Run("should log without context fields", func(t *testing.T) {
		var buf bytes.Buffer
		cl := NewContextLogger(&buf, "json", "info")

		cl.WithContext(context.Background()).Info("plain")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "plain", entry["msg"])
		assert.NotContains(t, entry, "request_id")
		assert.NotContains(t, entry, "operation")
	})
}

func TestContextLogger_LevelFiltering(t *testing.T) {
	t.Run("should drop records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		cl := NewContextLogger(&buf, "json", "warn")

		cl.Logger().Info("suppressed")
		assert.Zero(t, buf.Len())

		cl.Logger().Warn("emitted")
		assert.NotZero(t, buf.Len())
	})
}

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		config := LoadLoggerConfigFromEnv()

		assert.Equal(t, "info", config.Level)
		assert.Equal(t, "json", config.Format)
		assert.Equal(t, "news-hub", config.ServiceName)
	})

	t.Run("should read environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("SERVICE_NAME", "news-hub-test")

		config := LoadLoggerConfigFromEnv()

		assert.Equal(t, "debug", config.Level)
		assert.Equal(t, "text", config.Format)
		assert.Equal(t, "news-hub-test", config.ServiceName)
	})
}
