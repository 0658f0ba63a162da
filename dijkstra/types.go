package dijkstra

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/crucible/observability"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that no legality policy was supplied.
	ErrNilPolicy = errors.New("dijkstra: policy is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrStartOutOfBounds indicates that the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start coordinate outside grid")

	// ErrUnreachable indicates that the frontier emptied before any goal state was settled.
	ErrUnreachable = errors.New("dijkstra: no goal state is reachable")

	// ErrStepLimit indicates that the settle budget set by WithMaxSteps ran out.
	ErrStepLimit = errors.New("dijkstra: step limit reached before a goal state")

	// ErrBadPolicy indicates run bounds that no path could satisfy.
	ErrBadPolicy = errors.New("dijkstra: invalid run bounds")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadMaxSteps indicates that MaxSteps was set to a negative value.
	ErrBadMaxSteps = errors.New("dijkstra: MaxSteps must be non-negative")
)

// Options configures a search.
//
// ReturnPath – if true, Result.Path holds the route from start to goal.
// MaxCost    – states whose accumulated cost exceeds this are never explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// MaxSteps   – maximum number of states to settle; 0 means unlimited.
// Context    – checked between expansions; its error ends the search.
// Logger     – receives debug lifecycle records; nil disables logging.
// Metrics    – receives one SearchStats per call.
type Options struct {
	ReturnPath bool
	MaxCost    int64
	MaxSteps   int
	Context    context.Context
	Logger     *slog.Logger
	Metrics    observability.MetricsRecorder
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithReturnPath asks for the route to be reconstructed into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the accumulated cost of explored states.
// A negative max panics with ErrBadMaxCost when the option is applied.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxSteps bounds the number of settled states. Zero removes the bound.
// A negative n panics with ErrBadMaxSteps when the option is applied.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// WithContext attaches ctx for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics attaches a metrics recorder. A nil recorder disables metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *Options) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		o.Metrics = m
	}
}

// DefaultOptions returns the Options used when no Option is given:
// no path, no cost cap, no step budget, background context, no logger, no metrics.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		MaxSteps:   0,
		Context:    context.Background(),
		Logger:     nil,
		Metrics:    observability.NoopMetrics{},
	}
}
