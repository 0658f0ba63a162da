package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// sampleCity is the 13×13 example map from the puzzle statement.
const sampleCity = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ultraCity punishes short runs: the cheap lane forces a long straight.
const ultraCity = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(t testing.TB, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s)
	require.NoError(t, err)
	return g
}

// randomGrid returns a w×h grid of weights 1..9 from a fixed seed.
func randomGrid(t testing.TB, seed int64, w, h int) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := grid.New(values)
	require.NoError(t, err)
	return g
}

// bruteForce relaxes every edge of the state graph until nothing improves
// (Bellman–Ford) and returns the cheapest goal state cost, or false.
func bruteForce(g *grid.Grid, start dijkstra.State, goal dijkstra.Goal, p dijkstra.Policy) (int64, bool) {
	dist := map[dijkstra.State]int64{start: 0}
	for changed := true; changed; {
		changed = false
		frozen := make([]dijkstra.State, 0, len(dist))
		for s := range dist {
			frozen = append(frozen, s)
		}
		for _, s := range frozen {
			for _, d := range grid.Directions {
				if !p.CanStep(s.Run, d) {
					continue
				}
				at := s.At.Add(d)
				if !g.InBounds(at) {
					continue
				}
				w, _ := g.Weight(at)
				next := dijkstra.State{At: at, Run: p.Advance(s.Run, d)}
				c := dist[s] + int64(w)
				if old, ok := dist[next]; !ok || c < old {
					dist[next] = c
					changed = true
				}
			}
		}
	}

	best, found := int64(0), false
	for s, c := range dist {
		if goal(s) && (!found || c < best) {
			best, found = c, true
		}
	}
	return best, found
}

// checkPath verifies that a returned route is contiguous, obeys the policy,
// and that its costs grow by exactly the weight of each entered cell.
func checkPath(t *testing.T, g *grid.Grid, p dijkstra.Policy, res *dijkstra.Result) {
	t.Helper()
	path := res.Path
	require.NotEmpty(t, path)
	require.Equal(t, res.Goal, path[len(path)-1].State)
	require.Equal(t, int64(0), path[0].Cost)
	require.Equal(t, 0, path[0].Run.Length)
	require.Equal(t, res.Cost, path[len(path)-1].Cost)

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		require.True(t, p.CanStep(prev.Run, cur.Run.From), "illegal step %s -> %s", prev, cur)
		require.Equal(t, prev.At.Add(cur.Run.From), cur.At, "non-adjacent step %s -> %s", prev, cur)
		require.Equal(t, p.Advance(prev.Run, cur.Run.From), cur.Run, "run bookkeeping at %s", cur)

		w, err := g.Weight(cur.At)
		require.NoError(t, err)
		require.Equal(t, prev.Cost+int64(w), cur.Cost, "cost step at %s", cur)
		require.GreaterOrEqual(t, cur.Cost, prev.Cost, "cost must not decrease")
	}
}

// runLengths splits a route into its runs.
func runLengths(path []dijkstra.Waypoint) []int {
	var runs []int
	for i := 1; i < len(path); i++ {
		if i == len(path)-1 || path[i+1].Run.Length == 1 {
			runs = append(runs, path[i].Run.Length)
		}
	}
	return runs
}
