// Package gridgraph exposes a terrain.Grid as an implicit weighted graph:
// cells are vertices, 4-directional adjacency defines the edges, and the
// cost of an edge is the traversal cost of its destination cell.
//
// What:
//
//   - Graph wraps one *terrain.Grid as a read-only view. It owns no terrain
//     data; it borrows the grid for the duration of a search, and its
//     dimensions are derived from the grid so the two can never diverge.
//   - Neighbors(c) yields the up/down/left/right cells inside the grid —
//     fewer than four at edges and corners, never diagonals.
//   - Cost(from, to) is the category cost of to: movement cost is
//     attributed to the destination cell, independent of from. With static
//     categories this is directionally symmetric in practice.
//
// Why:
//
//   - The graph never needs materializing: adjacency is computed from
//     coordinates, so a search over a cols×rows map allocates no edge
//     structures at all.
//
// Complexity:
//
//   - InBounds, Cost: O(1). Neighbors: O(1) (at most four offsets).
//
// Errors:
//
//   - ErrNilGrid: New was handed a nil grid.
//   - A Coord outside the grid simply has no neighbors; Cost must never be
//     called with an out-of-bounds destination (precondition, panics via
//     terrain.Grid.At).
package gridgraph
