package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONLogger returns a debug-level JSON logger writing into buf.
func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// decodeLines parses one JSON object per log line.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestEnrichLogger(t *testing.T) {
	t.Run("nil logger stays nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "run", "Part 1"))
	})

	t.Run("adds run fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := EnrichLogger(newJSONLogger(&buf), "run-123", "Part 2")
		logger.Info("hello")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "run-123", lines[0]["run_id"])
		assert.Equal(t, "Part 2", lines[0]["variant"])
	})
}

func TestLogSearchLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf)

	LogSearchStart(logger, "bounded(max=3)", 13, 13)
	LogSearchComplete(logger, SearchStats{
		Policy:   "bounded(max=3)",
		Outcome:  OutcomeFound,
		Cost:     102,
		Settled:  500,
		Pushed:   900,
		Duration: 1500 * time.Microsecond,
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "search starting", lines[0]["msg"])
	assert.Equal(t, float64(13), lines[0]["width"])
	assert.Equal(t, "search completed", lines[1]["msg"])
	assert.Equal(t, float64(102), lines[1]["cost"])
	assert.Equal(t, 1.5, lines[1]["duration_ms"])
}

func TestLogSearchError_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf)

	LogSearchError(logger, SearchStats{Outcome: OutcomeUnreachable}, errors.New("no path"))
	LogSearchError(logger, SearchStats{Outcome: OutcomeStepLimit}, errors.New("budget"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "unreachable", lines[0]["outcome"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "budget", lines[1]["error"])
}

func TestLogHelpers_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSearchStart(nil, "p", 1, 1)
		LogSearchComplete(nil, SearchStats{})
		LogSearchError(nil, SearchStats{}, errors.New("x"))
	})
}
