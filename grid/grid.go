package grid

import "fmt"

// Grid is an immutable rectangular array of heat-loss weights.
// The zero value is not usable; build one with New or Parse.
type Grid struct {
	width, height int
	cells         []uint8 // row-major, index = y*width + x
}

// New constructs a Grid from a non-empty, rectangular 2D slice of digits.
// It copies the input, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrDigitRange
// (wrapped with the offending cell) for values outside 0..9.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]uint8, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrDigitRange, v, x, y)
			}
			cells = append(cells, uint8(v))
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Origin returns the top-left cell (0,0).
func (g *Grid) Origin() Coordinate { return Coordinate{} }

// Corner returns the bottom-right cell (Width-1, Height-1).
func (g *Grid) Corner() Coordinate {
	return Coordinate{X: g.width - 1, Y: g.height - 1}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Weight returns the heat loss incurred by entering c.
// Returns ErrOutOfBounds (wrapped with c) when c lies outside the grid.
// Complexity: O(1).
func (g *Grid) Weight(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}

	return int(g.cells[g.index(c)]), nil
}

// Rows returns a fresh copy of the weights as [row][column].
// Complexity: O(W×H).
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		row := make([]int, g.width)
		for x := range row {
			row[x] = int(g.cells[y*g.width+x])
		}
		rows[y] = row
	}

	return rows
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}
