// Package solver runs several crucible variants over one grid at once.
//
// Each variant gets its own goroutine, run ID, log fields and trace span.
// The grid is shared read-only; every search owns its working memory, so no
// locking is involved. An unreachable goal or an exhausted step budget is an
// ordinary per-variant outcome recorded in Answer.Err; invalid variants and
// context cancellation abort the whole batch.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/observability"
)

// Answer is the outcome of one variant.
type Answer struct {
	Variant string
	RunID   string
	Cost    int64
	Result  *dijkstra.Result // nil when Err is set
	Err     error            // ErrUnreachable or ErrStepLimit, wrapped
}

// Solved reports whether the variant found a route.
func (a Answer) Solved() bool { return a.Err == nil }

// Solver carries the instrumentation and budgets shared by all runs.
type Solver struct {
	logger     *slog.Logger
	metrics    observability.MetricsRecorder
	spans      observability.SpanManager
	maxSteps   int
	returnPath bool
	newID      func() string
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option { return func(s *Solver) { s.logger = l } }

// WithMetrics attaches a metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(s *Solver) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithSpans attaches a span manager.
func WithSpans(sm observability.SpanManager) Option {
	return func(s *Solver) {
		if sm != nil {
			s.spans = sm
		}
	}
}

// WithMaxSteps bounds every search's settled states; 0 disables the bound.
func WithMaxSteps(n int) Option { return func(s *Solver) { s.maxSteps = n } }

// WithPaths keeps the reconstructed route in each Answer.Result.
func WithPaths() Option { return func(s *Solver) { s.returnPath = true } }

// New returns a Solver with no-op instrumentation unless options say otherwise.
func New(opts ...Option) *Solver {
	s := &Solver{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs every variant from the grid's origin to its bottom-right corner.
// Answers come back in the order of variants.
func (s *Solver) Solve(ctx context.Context, g *grid.Grid, variants []config.Variant) ([]Answer, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}

	// Build every policy up front so a bad variant fails before any search starts.
	policies := make([]dijkstra.Policy, len(variants))
	for i, v := range variants {
		p, err := v.Build()
		if err != nil {
			return nil, err
		}
		policies[i] = p
	}

	answers := make([]Answer, len(variants))
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range variants {
		eg.Go(func() error {
			a, err := s.solveOne(egCtx, g, variants[i].Name, policies[i])
			answers[i] = a
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

// solveOne runs a single variant. Only fatal failures are returned as errors.
func (s *Solver) solveOne(ctx context.Context, g *grid.Grid, name string, p dijkstra.Policy) (Answer, error) {
	runID := s.newID()
	logger := observability.EnrichLogger(s.logger, runID, name)
	ctx, span := s.spans.StartSearchSpan(ctx, name, runID)

	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(logger),
		dijkstra.WithMetrics(s.metrics),
		dijkstra.WithMaxSteps(s.maxSteps),
	}
	if s.returnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	res, err := dijkstra.Search(g, dijkstra.Start(g.Origin()), dijkstra.Arrive(p, g.Corner()), p, opts...)
	if err == nil {
		s.spans.AddSpanEvent(ctx, "goal settled", attribute.Int64("cost", res.Cost))
	}
	s.spans.EndSpanWithError(span, err)

	a := Answer{Variant: name, RunID: runID}
	switch {
	case err == nil:
		a.Cost = res.Cost
		a.Result = res
		return a, nil
	case errors.Is(err, dijkstra.ErrUnreachable), errors.Is(err, dijkstra.ErrStepLimit):
		a.Err = err
		return a, nil
	default:
		return a, fmt.Errorf("solver: variant %q: %w", name, err)
	}
}
