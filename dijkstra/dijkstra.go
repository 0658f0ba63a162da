// Package dijkstra implements the constrained uniform-cost search.
//
// Notes on implementation choices:
//
//   - One settled set serves as the "visited" check: a popped state that is
//     already settled is a stale heap entry and is dropped.
//   - The goal predicate is tested when a state is settled, never when it is
//     pushed, so the first goal settled carries the global minimum.
//   - Relaxation requires a strict improvement, so equal-cost rediscoveries
//     do not grow the heap.
package dijkstra

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/observability"
)

// ctxCheckEvery is how many settled states pass between context checks.
const ctxCheckEvery = 256

// ShortestCost returns the minimum accumulated weight of any route from start
// to a state accepted by isGoal, moving only as policy allows. Entering a cell
// adds its weight; the start cell is free.
//
// Returns ErrUnreachable when no goal state can be reached, and the errors
// listed on Search for invalid input or exhausted budgets.
//
// Complexity: O(S log S) time, O(S) space, S = number of reachable states.
func ShortestCost(g *grid.Grid, start State, isGoal Goal, policy Policy, opts ...Option) (int64, error) {
	res, err := Search(g, start, isGoal, policy, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs the constrained search and reports the full Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. policy must be non-nil (ErrNilPolicy).
//  3. isGoal must be non-nil (ErrNilGoal).
//  4. start.At must lie on the grid (ErrStartOutOfBounds).
//
// Failure outcomes after validation:
//
//   - ErrUnreachable: the frontier emptied, or every remaining state costs more than MaxCost.
//   - ErrStepLimit:   MaxSteps states were settled without reaching a goal.
//   - ctx.Err():      the WithContext context ended (wrapped).
func Search(g *grid.Grid, start State, isGoal Goal, policy Policy, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}
	if !g.InBounds(start.At) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrStartOutOfBounds, start.At, g.Width(), g.Height())
	}

	// 3) Prepare per-call state. Nothing here outlives the call.
	r := &runner{
		g:       g,
		policy:  policy,
		goal:    isGoal,
		options: cfg,
		cost:    make(map[State]int64),
		settled: make(map[State]struct{}),
		pq:      make(frontier, 0, g.Width()*g.Height()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State)
	}

	name := policyName(policy)
	observability.LogSearchStart(cfg.Logger, name, g.Width(), g.Height())
	began := time.Now()

	// 4) Run the main loop.
	r.init(start)
	goal, err := r.process()

	stats := observability.SearchStats{
		Policy:   name,
		Settled:  len(r.settled),
		Pushed:   r.pushed,
		Duration: time.Since(began),
	}
	if err != nil {
		stats.Outcome = outcomeOf(err)
		cfg.Metrics.RecordSearch(cfg.Context, stats)
		observability.LogSearchError(cfg.Logger, stats, err)
		return nil, err
	}

	res := &Result{
		Cost:    r.cost[goal],
		Goal:    goal,
		Settled: len(r.settled),
		Pushed:  r.pushed,
	}
	if cfg.ReturnPath {
		res.Path = r.path(goal)
	}

	stats.Outcome = observability.OutcomeFound
	stats.Cost = res.Cost
	cfg.Metrics.RecordSearch(cfg.Context, stats)
	observability.LogSearchComplete(cfg.Logger, stats)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid         // read-only
	policy  Policy             // legality rules
	goal    Goal               // termination predicate
	options Options            // caps, context, instrumentation
	cost    map[State]int64    // best known cost per state
	prev    map[State]State    // predecessor per state; nil unless ReturnPath
	settled map[State]struct{} // states whose cost is final
	pq      frontier           // lazy min-heap
	pushed  int                // frontier insertions
}

// init seeds the cost map and the heap with the start state at cost 0.
func (r *runner) init(start State) {
	r.cost[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push enqueues s at cost c.
func (r *runner) push(s State, c int64) {
	heap.Push(&r.pq, item{state: s, cost: c})
	r.pushed++
}

// process pops states in cost order until a goal is settled or the search
// cannot continue. It returns the settled goal state.
func (r *runner) process() (State, error) {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		it := heap.Pop(&r.pq).(item)

		// 2) Drop stale entries.
		if _, done := r.settled[it.state]; done {
			continue
		}

		// 3) Everything left costs more than the cap: stop, as if exhausted.
		if it.cost > cfg.MaxCost {
			break
		}

		// 4) Honour the settle budget and the context.
		if cfg.MaxSteps > 0 && len(r.settled) >= cfg.MaxSteps {
			return State{}, fmt.Errorf("%w: %d states settled", ErrStepLimit, len(r.settled))
		}
		if len(r.settled)%ctxCheckEvery == 0 {
			if err := cfg.Context.Err(); err != nil {
				return State{}, fmt.Errorf("dijkstra: search interrupted after %d states: %w", len(r.settled), err)
			}
		}

		// 5) Settle; the first goal settled is optimal.
		r.settled[it.state] = struct{}{}
		if r.goal(it.state) {
			return it.state, nil
		}

		// 6) Expand.
		if err := r.relax(it.state, it.cost); err != nil {
			return State{}, err
		}
	}

	return State{}, ErrUnreachable
}

// relax tries each direction from u and records strictly cheaper routes.
// Assumes r.cost[u] == d is final.
func (r *runner) relax(u State, d int64) error {
	var (
		dir     grid.Direction
		next    State
		w       int
		err     error
		newCost int64
	)
	for _, dir = range grid.Directions {
		if !r.policy.CanStep(u.Run, dir) {
			continue
		}
		next.At = u.At.Add(dir)
		if !r.g.InBounds(next.At) {
			continue
		}
		next.Run = r.policy.Advance(u.Run, dir)

		// Bounds were checked above; a failure here is a defect.
		if w, err = r.g.Weight(next.At); err != nil {
			return fmt.Errorf("dijkstra: expanding %s: %w", u, err)
		}

		newCost = d + int64(w)
		if newCost > r.options.MaxCost {
			continue
		}
		if _, done := r.settled[next]; done {
			continue
		}
		if old, seen := r.cost[next]; seen && newCost >= old {
			continue
		}

		r.cost[next] = newCost
		if r.prev != nil {
			r.prev[next] = u
		}
		r.push(next, newCost)
	}

	return nil
}

// path walks the predecessor map back from goal and returns the route in order.
func (r *runner) path(goal State) []Waypoint {
	var rev []Waypoint
	at := goal
	for {
		rev = append(rev, Waypoint{State: at, Cost: r.cost[at]})
		p, ok := r.prev[at]
		if !ok {
			break
		}
		at = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// outcomeOf classifies a search error for metrics and logs.
func outcomeOf(err error) observability.Outcome {
	switch {
	case errors.Is(err, ErrUnreachable):
		return observability.OutcomeUnreachable
	case errors.Is(err, ErrStepLimit):
		return observability.OutcomeStepLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return observability.OutcomeCanceled
	default:
		return observability.OutcomeError
	}
}
