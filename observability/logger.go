package observability

import (
	"context"
	"log/slog"
	"time"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with run_id and variant fields, or nil for a nil logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "3f1c…", "Part 1")
//	enriched.Info("searching") // includes run_id, variant
func EnrichLogger(logger *slog.Logger, runID, variant string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("variant", variant),
	)
}

// LogSearchStart logs the start of a constrained search.
func LogSearchStart(logger *slog.Logger, policy string, width, height int) {
	if logger == nil {
		return
	}
	logger.Debug("search starting",
		slog.String("policy", policy),
		slog.Int("width", width),
		slog.Int("height", height),
	)
}

// LogSearchComplete logs a search that settled a goal state.
func LogSearchComplete(logger *slog.Logger, stats SearchStats) {
	if logger == nil {
		return
	}
	logger.Debug("search completed",
		slog.String("policy", stats.Policy),
		slog.Int64("cost", stats.Cost),
		slog.Int("settled", stats.Settled),
		slog.Int("pushed", stats.Pushed),
		slog.Float64("duration_ms", durationMs(stats.Duration)),
	)
}

// LogSearchError logs a search that ended without a goal.
// Unreachable outcomes are logged at Info; everything else at Error.
func LogSearchError(logger *slog.Logger, stats SearchStats, err error) {
	if logger == nil {
		return
	}
	level := slog.LevelError
	if stats.Outcome == OutcomeUnreachable {
		level = slog.LevelInfo
	}
	logger.Log(context.Background(), level, "search failed",
		slog.String("policy", stats.Policy),
		slog.String("outcome", string(stats.Outcome)),
		slog.String("error", err.Error()),
		slog.Int("settled", stats.Settled),
		slog.Float64("duration_ms", durationMs(stats.Duration)),
	)
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
