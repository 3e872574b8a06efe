// Package terrain_test provides runnable examples for terrain
// classification and grid generation.
package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/terrapath/terrain"
)

// ExampleClassify demonstrates the fixed classification bands on the
// normalized height (1+raw)/2.
func ExampleClassify() {
	// 1) A raw sample of -1 normalizes to height 0 — the deepest water.
	fmt.Println(terrain.Classify(-1))
	// 2) -0.25 normalizes to 0.375 — inside the shallow-water band.
	fmt.Println(terrain.Classify(-0.25))
	// 3) 0 normalizes to 0.5 — grassland.
	fmt.Println(terrain.Classify(0))
	// 4) 0.9 normalizes to 0.95 — mountains.
	fmt.Println(terrain.Classify(0.9))
	// Output:
	// DeepWater
	// Water
	// Grass
	// Mountain
}

// ExampleNewGrid demonstrates deterministic generation: the default config
// yields a 100×100 grid, and regenerating with the same parameters
// reproduces it cell-for-cell.
func ExampleNewGrid() {
	first, err := terrain.NewGrid(terrain.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	second, err := terrain.NewGrid(terrain.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d×%d identical=%v\n", first.Cols(), first.Rows(), first.Equal(second))
	// Output: 100×100 identical=true
}

// ExampleCategory_Cost shows the static category→cost table used as edge
// weights by the grid graph.
func ExampleCategory_Cost() {
	for _, cat := range []terrain.Category{terrain.DeepWater, terrain.Water, terrain.Grass, terrain.Mountain} {
		fmt.Printf("%s=%d\n", cat, cat.Cost())
	}
	// Output:
	// DeepWater=6
	// Water=3
	// Grass=1
	// Mountain=8
}
