package grid

import "fmt"

// Coordinate is a cell position. X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// Add returns the coordinate one step away in direction d.
// The result may lie outside any grid; callers check InBounds.
func (c Coordinate) Add(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step along one axis.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Right increases X.
	Right
	// Down increases Y.
	Down
	// Left decreases X.
	Left
)

// Directions lists every direction in expansion order.
var Directions = [4]Direction{Up, Right, Down, Left}

// offsets is indexed by Direction, same order as gridgraph's Conn4 table.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit (dx, dy) of d.
func (d Direction) Delta() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Opposite returns the reverse direction: Up↔Down, Left↔Right.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}
