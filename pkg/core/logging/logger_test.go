package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("textkit")
	assert.Equal(t, "textkit", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{ServiceName: "textkit", Level: "info", Format: "json", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("command", "strip").Msg("done")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "done", entries[0]["message"])
	assert.Equal(t, "textkit", entries[0]["service"])
	assert.Equal(t, "strip", entries[0]["command"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Contains(t, entries[0], "time")
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{ServiceName: "textkit", Level: "debug", Format: "text", Output: &buf})

	logger.Debug().Msg("plain output")

	out := buf.String()
	assert.Contains(t, out, "plain output")
	assert.Contains(t, out, "service=textkit")
	assert.False(t, strings.HasPrefix(out, "{"), "text format must not be JSON")
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Output: &primary, AdditionalOutputs: []io.Writer{&extra}})

	logger.Info().Msg("twice")

	assert.Contains(t, primary.String(), "twice")
	assert.Contains(t, extra.String(), "twice")
}

func TestLogError(t *testing.T) {
	t.Run("input error logs at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerConfig{Level: "info", Output: &buf})

		LogError(logger, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "hex", "zz", "hex digits"), "command failed")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1, "trace is logged at debug only")
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, "INVALID_INPUT", entries[0]["code"])
		assert.Equal(t, "cli", entries[0]["module"])
		assert.Equal(t, "hex", entries[0]["operation"])
		assert.Equal(t, "command failed", entries[0]["message"])
	})

	t.Run("io error logs at error with trace", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerConfig{Level: "debug", Output: &buf})

		LogError(logger, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read", errors.New("broken pipe")), "read failed")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, "error", entries[0]["level"])
		assert.Equal(t, "IO_ERROR", entries[0]["code"])
		assert.Contains(t, entries[0]["summary"], "broken pipe")
		assert.Contains(t, entries[1]["trace"], "Caused by: broken pipe")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerConfig{Level: "info", Output: &buf})

		LogError(logger, errors.New("first\nsecond\nthird"), "oops")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "UNKNOWN", entries[0]["code"])
		assert.Equal(t, "first\tsecond ...", entries[0]["summary"])
		assert.NotContains(t, entries[0], "module")
	})

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		LogError(NewLogger(LoggerConfig{Output: &buf}), nil, "nothing")
		assert.Empty(t, buf.String())
	})
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
