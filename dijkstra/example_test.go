// Package dijkstra_test provides runnable examples for the grid search.
// Each example is runnable via “go test -run Example”, showing both code
// and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/terrapath/dijkstra"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

// ExampleSearch demonstrates the canonical detour: on a 3×3 grass map with
// a mountain in the middle, the cheapest west→east route skirts the
// mountain for a total cost of 4 instead of climbing it for 9.
func ExampleSearch() {
	// 1) Lay out the map explicitly; (1,1) is the expensive mountain.
	grid, _ := terrain.GridFromRows([][]terrain.Category{
		{terrain.Grass, terrain.Grass, terrain.Grass},
		{terrain.Grass, terrain.Mountain, terrain.Grass},
		{terrain.Grass, terrain.Grass, terrain.Grass},
	})
	// 2) Wrap it as a graph view.
	g, _ := gridgraph.New(grid)

	// 3) Route from the west edge to the east edge.
	res, err := dijkstra.Search(g,
		terrain.Coord{Col: 0, Row: 1},
		terrain.Coord{Col: 2, Row: 1},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Two equal-cost detours exist (over the top or under the bottom);
	//    both take four unit steps across five cells.
	cost, _ := res.Cost()
	fmt.Printf("found=%v cost=%d cells=%d\n", res.Found, cost, len(res.Path()))
	// Output: found=true cost=4 cells=5
}

// ExampleSearch_unreachable demonstrates that a goal sealed off by
// impassable cells is a defined outcome: no error, empty path.
func ExampleSearch_unreachable() {
	// A mountain column splits the map in two.
	grid, _ := terrain.GridFromRows([][]terrain.Category{
		{terrain.Grass, terrain.Mountain, terrain.Grass},
		{terrain.Grass, terrain.Mountain, terrain.Grass},
	})
	g, _ := gridgraph.New(grid)

	// Declaring cost-8 cells impassable turns the column into a wall.
	res, err := dijkstra.Search(g,
		terrain.Coord{Col: 0, Row: 0},
		terrain.Coord{Col: 2, Row: 0},
		dijkstra.WithImpassableCost(8),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v cells=%d\n", res.Found, len(res.Path()))
	// Output: found=false cells=0
}
