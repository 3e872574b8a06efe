// Package terrain defines core types and sentinel errors for terrain
// classification and grid generation.
package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a configuration that yields cols or rows ≤ 0.
	ErrBadDimensions = errors.New("terrain: MapSize and TileSize must yield at least one column and one row")
	// ErrBadNoiseScale indicates a non-positive noise stretch factor.
	ErrBadNoiseScale = errors.New("terrain: NoiseScale must be positive")
	// ErrEmptyGrid indicates input rows with no cells.
	ErrEmptyGrid = errors.New("terrain: input must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrBadCategory indicates a cell value outside the closed Category enum.
	ErrBadCategory = errors.New("terrain: unknown terrain category")
)

// Coord identifies a single grid cell by (column, row). It is an immutable
// value type: equality and hashing are by value, so Coord is map-key safe.
type Coord struct {
	Col, Row int
}

// String renders the coordinate as "(col,row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Category is a closed enum of terrain classes. Each category carries a
// fixed positive traversal cost; the cost table is static configuration,
// never runtime state.
type Category uint8

const (
	// DeepWater is the lowest terrain band (traversal cost 6).
	DeepWater Category = iota
	// Water is the shallow band just above deep water (traversal cost 3).
	Water
	// Grass is the default traversable band (traversal cost 1).
	Grass
	// Mountain is the highest band (traversal cost 8).
	Mountain
)

// categoryCosts maps each Category to its fixed traversal cost.
// Invariant: every category maps to exactly one positive cost.
var categoryCosts = [...]int{
	DeepWater: 6,
	Water:     3,
	Grass:     1,
	Mountain:  8,
}

// categoryNames maps each Category to its display name.
var categoryNames = [...]string{
	DeepWater: "DeepWater",
	Water:     "Water",
	Grass:     "Grass",
	Mountain:  "Mountain",
}

// Cost returns the fixed traversal cost of the category: one of {6, 3, 1, 8}.
// Precondition: c is one of the declared Category constants; any other
// value is a programming error and panics.
func (c Category) Cost() int {
	return categoryCosts[c]
}

// String returns the category name, or "Category(n)" for values outside
// the closed enum.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return fmt.Sprintf("Category(%d)", uint8(c))
}

// band is one entry of the ordered classification table: heights strictly
// below upper (after normalization) fall into cat, unless an earlier band
// already claimed them.
type band struct {
	upper float64
	cat   Category
}

// classifyBands is the fixed, ordered threshold table on normalized height.
// The final Mountain band is the fallthrough for everything ≥ 0.56,
// including out-of-range samples above 1.
var classifyBands = [...]band{
	{upper: 0.34, cat: DeepWater},
	{upper: 0.40, cat: Water},
	{upper: 0.56, cat: Grass},
}

// Classify maps a raw noise sample (nominally in [-1,1]) to a Category.
// The raw value is first normalized to (1+raw)/2 and then matched against
// the ordered bands. Pure and total over all reals: values outside [0,1]
// still classify via the same ordered comparisons (anything below the
// lowest band is DeepWater, anything above the highest is Mountain).
// Complexity: O(1).
func Classify(raw float64) Category {
	height := (1 + raw) / 2
	for _, b := range classifyBands {
		if height < b.upper {
			return b.cat
		}
	}

	return Mountain
}
