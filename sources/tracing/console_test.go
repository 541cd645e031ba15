package tracing

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestConsoleLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&LoggerConfig{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	log.With(TitleContent, "1-3").I("Title expanded", IndicesCount, 3)
	log.D("hidden below info")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "Title expanded", record["msg"])
	assert.Equal(t, "1-3", record[TitleContent])
	assert.EqualValues(t, 3, record[IndicesCount])
}

func TestConsoleLoggerText(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&LoggerConfig{Level: slog.LevelDebug, Format: FormatText, Output: &buf})

	log.W("Title rejected", TitleReason, "unsupported")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "title_reason=unsupported")
}

func TestFatalPanics(t *testing.T) {
	log := NewConsoleLogger(&LoggerConfig{Output: &bytes.Buffer{}})
	assert.PanicsWithValue(t, "boom", func() { log.F("boom") })
}

func TestReportExecutionForRE(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&LoggerConfig{Level: slog.LevelDebug, Output: &buf})
	failure := errors.New("failure")

	var reported time.Duration
	result, err := ReportExecutionForRE(log, func() (int, error) {
		return 7, failure
	}, func(l *Logger, elapsed time.Duration, result int, err error) {
		reported = elapsed
		l.I("done", "result", result, InnerError, err)
	})

	assert.Equal(t, 7, result)
	assert.ErrorIs(t, err, failure)
	assert.GreaterOrEqual(t, reported, time.Duration(0))
	assert.Contains(t, buf.String(), ExecutionTime)
}
