package terrain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrapath/noise"
)

// Grid is a total, immutable mapping from every Coord in
// [0,cols)×[0,rows) to its Category. Once constructed it never mutates;
// regeneration means building a new Grid and discarding the old one
// wholesale, so callers can never observe a partially-updated map.
type Grid struct {
	cols, rows int
	cells      []Category // row-major: cells[row*cols+col]
	cfg        Config
}

// NewGrid generates a grid by sampling a seeded noise field once per cell
// and classifying the result. Configuration is validated up front:
//
//   - TileSize ≤ 0 or MapSize < TileSize (degenerate dimensions) → ErrBadDimensions.
//   - NoiseScale ≤ 0 → ErrBadNoiseScale.
//   - Octaves < 1 → noise.ErrBadOctaves.
//
// Each cell (col,row) is sampled at the stretched continuous coordinate
// (col/NoiseScale, row/NoiseScale), which correlates neighboring cells into
// contiguous terrain regions. Rows are sampled concurrently — every cell
// write targets a disjoint slice index, and the grid is returned only after
// the final barrier — so generation is still atomic from the caller's view.
//
// Complexity: O(cols×rows×Octaves) time, O(cols×rows) memory.
func NewGrid(opts ...Option) (*Grid, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.TileSize <= 0 || cfg.MapSize < cfg.TileSize {
		return nil, fmt.Errorf("%w: MapSize=%d TileSize=%d", ErrBadDimensions, cfg.MapSize, cfg.TileSize)
	}
	if cfg.NoiseScale <= 0 {
		return nil, fmt.Errorf("%w: NoiseScale=%d", ErrBadNoiseScale, cfg.NoiseScale)
	}

	field, err := noise.New(cfg.Seed, cfg.Octaves)
	if err != nil {
		return nil, err
	}

	side := cfg.MapSize / cfg.TileSize
	g := &Grid{
		cols:  side,
		rows:  side,
		cells: make([]Category, side*side),
		cfg:   cfg,
	}

	scale := float64(cfg.NoiseScale)
	var eg errgroup.Group
	for row := 0; row < g.rows; row++ {
		y := float64(row) / scale
		base := row * g.cols
		eg.Go(func() error {
			for col := 0; col < g.cols; col++ {
				raw := field.Sample(float64(col)/scale, y)
				g.cells[base+col] = Classify(raw)
			}

			return nil
		})
	}
	// Sampling is pure and cannot fail; Wait is the publication barrier.
	_ = eg.Wait()

	return g, nil
}

// GridFromRows constructs a grid from explicit per-cell categories, bypassing
// noise generation. rows[r][c] becomes the category of Coord{Col: c, Row: r}.
// The input is deep-copied so later caller mutations cannot leak in.
//
// Returns ErrEmptyGrid for zero rows or columns, ErrNonRectangular when row
// lengths differ, and ErrBadCategory for values outside the closed enum.
// Complexity: O(cols×rows).
func GridFromRows(rows [][]Category) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])

	g := &Grid{
		cols:  cols,
		rows:  len(rows),
		cells: make([]Category, cols*len(rows)),
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, cat := range row {
			if cat > Mountain {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCategory, uint8(cat), c, r)
			}
			g.cells[r*cols+c] = cat
		}
	}

	return g, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Config returns the configuration the grid was generated from. For grids
// built via GridFromRows it is the zero Config.
func (g *Grid) Config() Config { return g.cfg }

// InBounds reports whether c lies within [0,cols)×[0,rows).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// At returns the category of the cell at c.
// Precondition: c must be in bounds; an out-of-range coordinate is a
// programming error and panics. Guard with InBounds at the boundary.
// Complexity: O(1).
func (g *Grid) At(c Coord) Category {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("terrain: coordinate %v outside %d×%d grid", c, g.cols, g.rows))
	}

	return g.cells[c.Row*g.cols+c.Col]
}

// Categories returns a fresh snapshot of the full Coord→Category mapping,
// one entry per cell. Intended for renderers that map categories to colors;
// mutating the returned map does not affect the grid.
// Complexity: O(cols×rows).
func (g *Grid) Categories() map[Coord]Category {
	m := make(map[Coord]Category, len(g.cells))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			m[Coord{Col: col, Row: row}] = g.cells[row*g.cols+col]
		}
	}

	return m
}

// Equal reports whether two grids have identical dimensions and
// cell-for-cell identical categories. Useful for determinism checks.
// Complexity: O(cols×rows).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.cols != other.cols || g.rows != other.rows {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}
