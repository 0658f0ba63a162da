package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// RunState records the direction of the last step and how many consecutive
// steps went that way. The zero value (Length 0) means no step was taken yet;
// From carries no meaning then.
type RunState struct {
	From   grid.Direction
	Length int
}

// String renders the run as "Right×3", or "start" before the first step.
func (r RunState) String() string {
	if r.Length == 0 {
		return "start"
	}
	return fmt.Sprintf("%s×%d", r.From, r.Length)
}

// State is a node of the search graph. It is comparable and used directly as a map key.
type State struct {
	At  grid.Coordinate
	Run RunState
}

// String renders the state as "(x,y) Right×3".
func (s State) String() string {
	return s.At.String() + " " + s.Run.String()
}

// Start returns the initial state at c with no committed direction.
func Start(c grid.Coordinate) State {
	return State{At: c}
}

// Goal reports whether a settled state ends the search.
type Goal func(State) bool

// Reach accepts any state standing on target, whatever its run.
func Reach(target grid.Coordinate) Goal {
	return func(s State) bool {
		return s.At == target
	}
}

// Arrive accepts states standing on target that the policy allows to stop.
// Policies that do not implement Stopper behave like Reach.
func Arrive(p Policy, target grid.Coordinate) Goal {
	stopper, ok := p.(Stopper)
	return func(s State) bool {
		if s.At != target {
			return false
		}
		return !ok || stopper.CanStop(s.Run)
	}
}

// Waypoint is one state on a returned route with the cost accumulated on arrival.
type Waypoint struct {
	State
	Cost int64
}

// Result describes a successful search.
//
// Cost    – minimum accumulated weight to the first settled goal state.
// Goal    – that goal state.
// Path    – start-to-goal route (nil unless WithReturnPath was given).
// Settled – number of states finalised, goal included.
// Pushed  – number of frontier insertions, start included.
type Result struct {
	Cost    int64
	Goal    State
	Path    []Waypoint
	Settled int
	Pushed  int
}
