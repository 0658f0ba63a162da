package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records one finished search, whatever its outcome.
	RecordSearch(ctx context.Context, stats SearchStats)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	searches      metric.Int64Counter
	settled       metric.Int64Counter
	pushed        metric.Int64Counter
	searchLatency metric.Float64Histogram
	cost          metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("crucible")

	searches, err := meter.Int64Counter("crucible.search.runs",
		metric.WithDescription("Number of constrained searches by outcome"),
	)
	if err != nil {
		return nil, err
	}

	settled, err := meter.Int64Counter("crucible.search.settled",
		metric.WithDescription("Number of search states settled"),
	)
	if err != nil {
		return nil, err
	}

	pushed, err := meter.Int64Counter("crucible.search.pushed",
		metric.WithDescription("Number of frontier insertions"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("crucible.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cost, err := meter.Int64Histogram("crucible.search.cost",
		metric.WithDescription("Minimum heat loss of successful searches"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searches:      searches,
		settled:       settled,
		pushed:        pushed,
		searchLatency: searchLatency,
		cost:          cost,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider. Falls back to NoopMetrics if the instruments cannot be created.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordSearch records one finished search.
func (m *otelMetrics) RecordSearch(ctx context.Context, stats SearchStats) {
	attrs := metric.WithAttributes(
		attribute.String("policy", stats.Policy),
		attribute.String("outcome", string(stats.Outcome)),
	)
	m.searches.Add(ctx, 1, attrs)
	m.settled.Add(ctx, int64(stats.Settled), attrs)
	m.pushed.Add(ctx, int64(stats.Pushed), attrs)
	m.searchLatency.Record(ctx, float64(stats.Duration)/float64(time.Millisecond), attrs)
	if stats.Outcome == OutcomeFound {
		m.cost.Record(ctx, stats.Cost, metric.WithAttributes(attribute.String("policy", stats.Policy)))
	}
}
