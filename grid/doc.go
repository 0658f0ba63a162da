// Package grid holds the immutable weighted city map the crucible searches run on.
//
// What:
//
//   - Grid wraps a rectangular [][]int of single-digit heat-loss weights (0..9).
//   - Coordinate is an (X, Y) value type; X grows to the right, Y grows downward.
//   - Direction is one of Up, Right, Down, Left with a unit delta and an opposite.
//   - Parse / ParseString read rows of ASCII digits into a Grid.
//
// Why:
//
//   - Search engines need O(1) bounds checks and weight lookups.
//   - Sharing one Grid between concurrent searches must be free of locks,
//     so a Grid never changes after construction.
//
// Complexity:
//
//   - New, Parse:       O(W×H) time and memory.
//   - Weight, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDigitRange:     a value lies outside 0..9 (or a character is not a digit).
//   - ErrOutOfBounds:    Weight was asked for a coordinate outside the grid.
package grid
