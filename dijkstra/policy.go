package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// Policy decides which steps a crucible may take.
//
// CanStep reports whether a step in direction d is legal after run.
// Advance returns the run after that step; it is only called when CanStep is true.
// A policy must never permit a run longer than its own maximum, so illegal
// states are never generated.
type Policy interface {
	CanStep(run RunState, d grid.Direction) bool
	Advance(run RunState, d grid.Direction) RunState
}

// Stopper is implemented by policies that restrict where a route may end.
type Stopper interface {
	CanStop(run RunState) bool
}

// Default run bounds of the two crucible kinds.
const (
	CrucibleMaxRun      = 3
	UltraCrucibleMinRun = 4
	UltraCrucibleMaxRun = 10
)

// advance is shared by both policies: a repeat extends the run, anything else starts a new one.
func advance(run RunState, d grid.Direction) RunState {
	if run.Length > 0 && d == run.From {
		return RunState{From: d, Length: run.Length + 1}
	}
	return RunState{From: d, Length: 1}
}

// BoundedRun forbids reversing and forbids more than Max consecutive steps
// in one direction. Every other step, including the first, is legal.
type BoundedRun struct {
	Max int
}

// Compile-time interface checks.
var (
	_ Policy  = BoundedRun{}
	_ Stopper = BoundedRun{}
)

// NewBoundedRun returns a BoundedRun policy; max must be at least 1.
func NewBoundedRun(max int) (BoundedRun, error) {
	if max < 1 {
		return BoundedRun{}, fmt.Errorf("%w: max run %d < 1", ErrBadPolicy, max)
	}
	return BoundedRun{Max: max}, nil
}

// Crucible returns the standard policy: at most three steps in a row.
func Crucible() BoundedRun {
	return BoundedRun{Max: CrucibleMaxRun}
}

// CanStep implements Policy.
func (p BoundedRun) CanStep(run RunState, d grid.Direction) bool {
	switch {
	case run.Length == 0:
		return true
	case d == run.From.Opposite():
		return false
	case d == run.From:
		return run.Length < p.Max
	default:
		return true
	}
}

// Advance implements Policy.
func (p BoundedRun) Advance(run RunState, d grid.Direction) RunState {
	return advance(run, d)
}

// CanStop implements Stopper; a bounded crucible may stop anywhere.
func (p BoundedRun) CanStop(RunState) bool { return true }

// String names the policy for logs and metrics.
func (p BoundedRun) String() string {
	return fmt.Sprintf("bounded(max=%d)", p.Max)
}

// MinimumCommit extends BoundedRun: once moving, a crucible must take at
// least Min steps in a direction before it may turn or stop, and at most Max.
type MinimumCommit struct {
	Min, Max int
}

// Compile-time interface checks.
var (
	_ Policy  = MinimumCommit{}
	_ Stopper = MinimumCommit{}
)

// NewMinimumCommit returns a MinimumCommit policy; it requires 1 ≤ min ≤ max.
func NewMinimumCommit(min, max int) (MinimumCommit, error) {
	if min < 1 || max < min {
		return MinimumCommit{}, fmt.Errorf("%w: need 1 <= min (%d) <= max (%d)", ErrBadPolicy, min, max)
	}
	return MinimumCommit{Min: min, Max: max}, nil
}

// UltraCrucible returns the standard ultra policy: between four and ten steps per run.
func UltraCrucible() MinimumCommit {
	return MinimumCommit{Min: UltraCrucibleMinRun, Max: UltraCrucibleMaxRun}
}

// CanStep implements Policy.
func (p MinimumCommit) CanStep(run RunState, d grid.Direction) bool {
	switch {
	case run.Length == 0:
		return true
	case d == run.From.Opposite():
		return false
	case d == run.From:
		return run.Length < p.Max
	default:
		return run.Length >= p.Min
	}
}

// Advance implements Policy.
func (p MinimumCommit) Advance(run RunState, d grid.Direction) RunState {
	return advance(run, d)
}

// CanStop implements Stopper; the current run must have reached Min.
func (p MinimumCommit) CanStop(run RunState) bool {
	return run.Length >= p.Min
}

// String names the policy for logs and metrics.
func (p MinimumCommit) String() string {
	return fmt.Sprintf("minimum-commit(min=%d,max=%d)", p.Min, p.Max)
}

// policyName labels p for logs and metrics.
func policyName(p Policy) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
