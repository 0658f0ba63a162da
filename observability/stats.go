package observability

import "time"

// Outcome classifies how a search ended.
type Outcome string

const (
	// OutcomeFound means a goal state was settled.
	OutcomeFound Outcome = "found"
	// OutcomeUnreachable means the frontier emptied first.
	OutcomeUnreachable Outcome = "unreachable"
	// OutcomeStepLimit means the settle budget ran out.
	OutcomeStepLimit Outcome = "step_limit"
	// OutcomeCanceled means the context was canceled or its deadline passed.
	OutcomeCanceled Outcome = "canceled"
	// OutcomeError covers invalid input and internal failures.
	OutcomeError Outcome = "error"
)

// SearchStats summarises one search invocation.
type SearchStats struct {
	Policy   string
	Outcome  Outcome
	Cost     int64 // meaningful only for OutcomeFound
	Settled  int
	Pushed   int
	Duration time.Duration
}
