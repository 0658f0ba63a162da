// Package dijkstra finds minimum heat-loss routes for a crucible that may not
// travel too far (or, for ultra crucibles, too little) in one direction.
//
// Overview:
//
//   - The search runs Dijkstra's algorithm over an augmented state space:
//     a node is (coordinate, last direction, run length), not a bare cell.
//     Two visits to the same cell with different run histories are distinct
//     nodes because they permit different futures.
//   - Entering a cell costs that cell's weight; leaving the start cell is free.
//   - Which moves are legal is decided by a pluggable Policy. Two policies ship:
//     BoundedRun (at most Max steps in a row) and MinimumCommit (at least Min
//     steps before turning or stopping, at most Max).
//   - The first goal state settled is optimal, so the search stops there.
//
// When to use:
//
//   - Any constrained-walk shortest path on a grid where the legality of the
//     next step depends on the recent run of steps.
//
// Key features:
//
//   - ShortestCost returns just the minimum cost; Search returns a Result with
//     counters and, with WithReturnPath(), the full route.
//   - WithMaxCost: states costing more than the cap are not explored.
//   - WithMaxSteps: bounds the number of settled states; exhaustion yields
//     ErrStepLimit, distinct from ErrUnreachable.
//   - WithContext: cancellation and deadlines are honoured between expansions.
//   - WithLogger / WithMetrics: slog and OpenTelemetry instrumentation.
//
// Performance and complexity:
//
//   - Let S = W·H·4·Max be the number of distinct states.
//   - Time:  O(S log S) with the lazy decrease-key heap.
//   - Space: O(S) for the cost map, the settled set and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNilPolicy, ErrNilGoal: missing inputs.
//   - ErrStartOutOfBounds: the start coordinate is not on the grid.
//   - ErrUnreachable: the frontier emptied before any goal state was settled.
//   - ErrStepLimit: the WithMaxSteps budget ran out first.
//   - ErrBadPolicy: NewBoundedRun / NewMinimumCommit got impossible bounds.
//   - context.Canceled / context.DeadlineExceeded, wrapped, from WithContext.
//
// Thread safety:
//
//   - Every call owns its cost map, settled set and frontier. A *grid.Grid is
//     immutable, so any number of searches may share one concurrently.
//
// Example:
//
//	g, _ := grid.ParseString(input)
//	policy := dijkstra.Crucible()
//	cost, err := dijkstra.ShortestCost(g,
//	    dijkstra.Start(g.Origin()),
//	    dijkstra.Arrive(policy, g.Corner()),
//	    policy,
//	)
package dijkstra
