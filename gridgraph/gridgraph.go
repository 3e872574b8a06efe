package gridgraph

import (
	"errors"

	"github.com/katalvlaran/terrapath/terrain"
)

// ErrNilGrid indicates that New was called with a nil terrain grid.
var ErrNilGrid = errors.New("gridgraph: terrain grid is nil")

// neighborOffsets is the fixed 4-directional adjacency: N, E, S, W.
// The order is an implementation detail — callers must not depend on it.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Graph is a read-only graph view over one terrain.Grid. It is immutable
// and safe for concurrent use; constructing it copies nothing.
type Graph struct {
	grid       *terrain.Grid
	cols, rows int
}

// New wraps a terrain grid as a graph view.
// Returns ErrNilGrid if grid is nil.
// Complexity: O(1).
func New(grid *terrain.Grid) (*Graph, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	return &Graph{
		grid: grid,
		cols: grid.Cols(),
		rows: grid.Rows(),
	}, nil
}

// Cols returns the number of columns of the underlying grid.
func (g *Graph) Cols() int { return g.cols }

// Rows returns the number of rows of the underlying grid.
func (g *Graph) Rows() int { return g.rows }

// Grid returns the wrapped terrain grid.
func (g *Graph) Grid() *terrain.Grid { return g.grid }

// InBounds reports whether c lies within [0,cols)×[0,rows).
// Complexity: O(1).
func (g *Graph) InBounds(c terrain.Coord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// Neighbors returns the orthogonally adjacent cells of c that lie inside
// the grid: up to four, fewer at edges and corners. A coordinate outside
// the grid has no neighbors.
// Complexity: O(1); allocates one slice of capacity 4.
func (g *Graph) Neighbors(c terrain.Coord) []terrain.Coord {
	out := make([]terrain.Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := terrain.Coord{Col: c.Col + d[0], Row: c.Row + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cost returns the traversal cost of stepping from from to to: the fixed
// category cost of the destination cell, one of {1, 3, 6, 8}. The from
// argument does not influence the result; it is part of the signature
// because edge cost is conceptually a property of the (from, to) step.
// Precondition: to must be in bounds.
// Complexity: O(1).
func (g *Graph) Cost(_, to terrain.Coord) int {
	return g.grid.At(to).Cost()
}
