package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json handler respects level and attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(&LoggerConfig{Level: "warn", IsJSON: true}, buf, slog.String("service", "cardsearch"))

		logger.Info("dropped")
		logger.Warn("kept", slog.Int("workers", 4))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "cardsearch", entry["service"])
		assert.Equal(t, float64(4), entry["workers"])
	})

	t.Run("text handler with nil config", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(nil, buf)

		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}
