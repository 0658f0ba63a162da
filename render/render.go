// Package render draws a search route over its heat-loss map.
//
// Cells off the route keep their digit. Route cells become box-drawing
// connectors joining the side the crucible entered from and the side it left
// by; the final cell shows a straight segment along its last run. The start
// cell keeps its digit, since nothing was paid to stand there.
package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// side bit per direction, indexed by grid.Direction.
var sideBit = [4]uint8{1, 2, 4, 8}

// corners maps the two-side mask of a turn to its glyph.
var corners = map[uint8]rune{
	sideBit[grid.Down] | sideBit[grid.Right]: '┍',
	sideBit[grid.Down] | sideBit[grid.Left]:  '┑',
	sideBit[grid.Up] | sideBit[grid.Left]:    '┙',
	sideBit[grid.Up] | sideBit[grid.Right]:   '┕',
}

// Overlay renders g with path drawn on top, one line per row.
// Waypoints outside g are ignored.
func Overlay(g *grid.Grid, path []dijkstra.Waypoint) string {
	rows := g.Rows()
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = make([]rune, len(row))
		for x, v := range row {
			cells[y][x] = rune('0' + v)
		}
	}

	for i := 1; i < len(path); i++ {
		at := path[i].At
		if !g.InBounds(at) {
			continue
		}
		in := path[i].Run.From
		out := in
		if i+1 < len(path) {
			out = path[i+1].Run.From
		}
		if r, ok := glyph(in, out); ok {
			cells[at.Y][at.X] = r
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	return b.String()
}

// glyph joins the side entered through (opposite of in) with the side left by.
// A reversal has no glyph.
func glyph(in, out grid.Direction) (rune, bool) {
	if in == out {
		if in.Vertical() {
			return '┃', true
		}
		return '━', true
	}
	r, ok := corners[sideBit[in.Opposite()]|sideBit[out]]
	return r, ok
}

// Summary is a one-line description of a result: "cost 102 over 28 steps".
func Summary(res *dijkstra.Result) string {
	steps := 0
	if len(res.Path) > 0 {
		steps = len(res.Path) - 1
	}
	return "cost " + strconv.FormatInt(res.Cost, 10) + " over " + strconv.Itoa(steps) + " steps"
}
