package grid_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// ExampleParse reads a small heat-loss map and looks up a few cells.
func ExampleParse() {
	g, err := grid.ParseString("2413\n3215\n3255\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d\n", g.Width(), g.Height())

	w, _ := g.Weight(g.Corner())
	fmt.Println("corner weight:", w)

	next := g.Origin().Add(grid.Right)
	w, _ = g.Weight(next)
	fmt.Println("right of origin:", next, w)

	_, err = g.Weight(next.Add(grid.Up))
	fmt.Println(err != nil)
	// Output:
	// 4x3
	// corner weight: 5
	// right of origin: (1,0) 4
	// true
}
