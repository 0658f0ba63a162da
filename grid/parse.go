package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads rows of ASCII digits from r and builds a Grid.
// Carriage returns are stripped and trailing blank lines are ignored;
// a blank line between rows is reported as ErrNonRectangular.
// A character other than '0'..'9' yields ErrDigitRange with its row and column.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]int
	blankAt := 0 // 1-based line of the first blank line since the last row
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			if blankAt == 0 {
				blankAt = y + 1
			}
			continue
		}
		if blankAt > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line at line %d before line %d", ErrNonRectangular, blankAt, y+1)
		}
		blankAt = 0
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrDigitRange, ch, y+1, x+1)
			}
			row[x] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
