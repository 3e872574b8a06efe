// Package terrain turns a coherent-noise field into a finite rectangular
// grid of classified terrain cells with fixed traversal costs.
//
// What:
//
//   - Coord: an immutable (column, row) cell identifier, usable as a map key.
//   - Category: a closed enum {DeepWater, Water, Grass, Mountain}, each
//     bound to a static positive traversal cost (6, 3, 1, 8).
//   - Classify: maps a raw noise height (nominally [-1,1]) to a Category via
//     fixed, ordered thresholds on the normalized height (1+raw)/2.
//   - Grid: a total, immutable Coord→Category mapping over
//     [0,cols)×[0,rows), generated once by sampling a noise.Field at
//     (col/NoiseScale, row/NoiseScale) per cell. Regeneration means
//     constructing a brand-new Grid; an existing Grid never mutates.
//
// Why:
//
//   - Stretched sampling (NoiseScale ≫ 1) correlates adjacent cells, so the
//     map forms contiguous regions instead of per-cell static.
//   - Keeping traversal cost as static data on the Category (rather than
//     per-cell state) makes the downstream graph view trivially read-only.
//
// Complexity:
//
//   - NewGrid: O(cols×rows) sampling + classification, paid once per map.
//     Rows are sampled in parallel; each cell write targets a disjoint
//     index, and the grid is only exposed after the final barrier.
//   - At / InBounds: O(1).
//
// Options:
//
//   - WithMapSize, WithTileSize: cols = rows = MapSize/TileSize
//     (integer division; MapSize should be a multiple of TileSize).
//   - WithNoiseScale: stretch factor applied to cell coordinates before
//     sampling. Larger values → smoother, larger terrain features.
//   - WithOctaves, WithSeed: forwarded to noise.New.
//
// Errors:
//
//   - ErrBadDimensions: configuration would produce cols or rows ≤ 0.
//   - ErrBadNoiseScale: NoiseScale ≤ 0.
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCategory: invalid input to
//     GridFromRows.
//   - noise.ErrBadOctaves surfaces unchanged from NewGrid.
//
// Rendering is out of scope: a renderer maps each Category to a color of
// its own choosing via Grid.Categories; cost and color are independent
// mappings and only cost lives here.
package terrain
