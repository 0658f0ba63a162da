// Package observability provides structured logging, metrics and tracing
// for crucible searches.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry (search runs, settled states, latency)
//   - Tracing via OpenTelemetry (one span per variant search)
//
// All features are opt-in and have no-op implementations when disabled:
// a nil *slog.Logger is silently ignored, NoopMetrics and NoopSpanManager
// discard everything.
package observability
