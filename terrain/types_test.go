// Package terrain_test contains unit tests for the terrain types:
// the Category cost table, the threshold classifier and the Coord value type.
package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/terrapath/terrain"
)

// ------------------------------------------------------------------------
// 1. Static cost table: every category maps to exactly one positive cost.
// ------------------------------------------------------------------------

func TestCategory_Cost(t *testing.T) {
	cases := []struct {
		cat  terrain.Category
		cost int
	}{
		{terrain.DeepWater, 6},
		{terrain.Water, 3},
		{terrain.Grass, 1},
		{terrain.Mountain, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.cost, tc.cat.Cost(), "cost of %v", tc.cat)
		assert.Positive(t, tc.cat.Cost(), "cost of %v must be positive", tc.cat)
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "DeepWater", terrain.DeepWater.String())
	assert.Equal(t, "Water", terrain.Water.String())
	assert.Equal(t, "Grass", terrain.Grass.String())
	assert.Equal(t, "Mountain", terrain.Mountain.String())
	assert.Equal(t, "Category(9)", terrain.Category(9).String())
}

// ------------------------------------------------------------------------
// 2. Classification: fixed ordered thresholds on normalized height.
// ------------------------------------------------------------------------

// TestClassify_Bands samples each band well away from its boundaries
// (the thresholds are exact constants; floating-point round-off on
// hand-constructed boundary inputs would test the test, not the code).
func TestClassify_Bands(t *testing.T) {
	// raw → normalized height is (1+raw)/2.
	cases := []struct {
		name string
		raw  float64
		want terrain.Category
	}{
		{"LowestDeepWater", -1.0, terrain.DeepWater}, // height 0.00
		{"MidDeepWater", -0.5, terrain.DeepWater},    // height 0.25
		{"UpperDeepWater", -0.34, terrain.DeepWater}, // height 0.33
		{"Water", -0.25, terrain.Water},              // height 0.375
		{"LowGrass", -0.16, terrain.Grass},           // height 0.42
		{"MidGrass", 0.0, terrain.Grass},             // height 0.50
		{"LowMountain", 0.2, terrain.Mountain},       // height 0.60
		{"TopMountain", 1.0, terrain.Mountain},       // height 1.00
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, terrain.Classify(tc.raw))
		})
	}
}

// TestClassify_TotalOverReals verifies that samples escaping the nominal
// [-1,1] range still classify via the same ordered comparisons.
func TestClassify_TotalOverReals(t *testing.T) {
	assert.Equal(t, terrain.DeepWater, terrain.Classify(-5.0))
	assert.Equal(t, terrain.Mountain, terrain.Classify(7.0))
}

// ------------------------------------------------------------------------
// 3. Coord: value semantics.
// ------------------------------------------------------------------------

func TestCoord_ValueSemantics(t *testing.T) {
	a := terrain.Coord{Col: 3, Row: 5}
	b := terrain.Coord{Col: 3, Row: 5}

	// Equality and hashing are by value: both literals address one map key.
	assert.Equal(t, a, b)
	m := map[terrain.Coord]int{a: 1}
	m[b]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])

	assert.Equal(t, "(3,5)", a.String())
}
