package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
		)
		log.Warn("hello")
		out := buf.String()
		assert.Contains(t, out, "WARN")
		assert.Contains(t, out, "hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Component("cli")),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "cli", entry["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey).(string); ok {
					return logger.RequestID(v), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "with id")
		log.With(logger.Component("api")).WithGroup("g").InfoContext(ctx, "grouped")

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[0], &entry))
		assert.Equal(t, "42", entry["request_id"])
		assert.Contains(t, string(lines[1]), `"request_id":"42"`)
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development uses text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("development", "svc"),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production uses json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("prod", "svc"),
			logger.WithOutput(buf),
		)
		log.Debug("dropped")
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("staging alias", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("stage", ""),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "staging", entry["env"])
		assert.NotContains(t, entry, "service")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := logger.ParseLevel("loud")
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
