package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

//----------------------------------------------------------------------------//
// New, InBounds and Weight
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, grid.ErrDigitRange},
		{"TooLarge", [][]int{{1, 2}, {3, 10}}, grid.ErrDigitRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the source slice is not observed.
func TestNew_CopiesInput(t *testing.T) {
	values := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 9
	w, err := g.Weight(grid.Coordinate{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	rows := g.Rows()
	rows[1][2] = 0
	w, err = g.Weight(grid.Coordinate{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, w)
}

// TestDimensions checks Width, Height, Origin and Corner on a 3×2 grid.
func TestDimensions(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, g.Origin())
	assert.Equal(t, grid.Coordinate{X: 2, Y: 1}, g.Corner())
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	valid := []grid.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%s)=false; want true", c)
		}
	}
	invalid := []grid.Coordinate{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%s)=true; want false", c)
		}
	}
}

// TestWeight reads every cell back and probes the out-of-bounds failure.
func TestWeight(t *testing.T) {
	values := [][]int{{2, 4, 1}, {3, 2, 1}}
	g, err := grid.New(values)
	require.NoError(t, err)

	for y, row := range values {
		for x, want := range row {
			got, err := g.Weight(grid.Coordinate{X: x, Y: y})
			require.NoError(t, err)
			assert.Equal(t, want, got, "weight at (%d,%d)", x, y)
		}
	}

	_, err = g.Weight(grid.Coordinate{X: 3, Y: 0})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = g.Weight(grid.Coordinate{X: 0, Y: -1})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestRows ensures Rows round-trips the construction input.
func TestRows(t *testing.T) {
	values := [][]int{{5, 9}, {0, 7}, {1, 1}}
	g, err := grid.New(values)
	require.NoError(t, err)

	if diff := cmp.Diff(values, g.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Coordinate and Direction
//----------------------------------------------------------------------------//

// TestDirection_Opposite covers the Up↔Down and Left↔Right pairs.
func TestDirection_Opposite(t *testing.T) {
	pairs := map[grid.Direction]grid.Direction{
		grid.Up:    grid.Down,
		grid.Down:  grid.Up,
		grid.Left:  grid.Right,
		grid.Right: grid.Left,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Opposite(), "%s.Opposite()", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "double opposite of %s", d)
	}
}

// TestDirection_Delta checks that each direction is a unit step and
// that a direction and its opposite cancel out.
func TestDirection_Delta(t *testing.T) {
	want := map[grid.Direction][2]int{
		grid.Up:    {0, -1},
		grid.Right: {1, 0},
		grid.Down:  {0, 1},
		grid.Left:  {-1, 0},
	}
	origin := grid.Coordinate{X: 5, Y: 5}
	for _, d := range grid.Directions {
		dx, dy := d.Delta()
		assert.Equal(t, want[d], [2]int{dx, dy}, "%s.Delta()", d)
		assert.Equal(t, origin, origin.Add(d).Add(d.Opposite()))
	}
}

// TestDirection_String covers named and unknown directions.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Up", grid.Up.String())
	assert.Equal(t, "Left", grid.Left.String())
	assert.Equal(t, "Direction(7)", grid.Direction(7).String())
	assert.True(t, grid.Down.Vertical())
	assert.False(t, grid.Right.Vertical())
	assert.Equal(t, "(3,4)", grid.Coordinate{X: 3, Y: 4}.String())
}
