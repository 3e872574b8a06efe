// Package dijkstra implements uniform-cost (Dijkstra) search over a
// gridgraph.Graph, from one start cell to one goal cell, with path
// reconstruction.
//
// Overview:
//
//   - Search expands cells in order of accumulated cost using a min-heap
//     frontier with the “lazy decrease-key” strategy: improvements push
//     duplicate heap entries, and stale entries are skipped at pop time via
//     a visited set.
//   - Relaxation is strict-improvement only (candidate < recorded), so
//     equal-cost rediscoveries never re-expand a cell.
//   - The search exits early the moment the goal is popped — valid because
//     every edge cost is positive, which guarantees the first pop of the
//     goal is already optimal.
//   - An exhausted frontier before the goal is popped is not an error: the
//     goal is unreachable, Result.Found is false and Result.Path is empty.
//     On a fully connected terrain grid this cannot occur, but the code
//     path exists and is exercised by the impassable-cost option.
//
// Termination:
//
//   - Each relaxation strictly lowers a cell's recorded cost from unknown
//     or a higher finite value, and costs are bounded below by zero, so the
//     frontier drains in finitely many steps.
//
// Complexity:
//
//   - Time:  O(E log V) with V = cols×rows and E = 4V on the grid.
//   - Space: O(V) for the cost and predecessor maps, O(E) worst-case heap.
//
// Options:
//
//   - WithMaxCost(x):        cells whose accumulated cost would exceed x are
//     not explored (x ≥ 0; negative panics ErrBadMaxCost).
//   - WithImpassableCost(t): cells whose category cost is ≥ t are never
//     entered, turning them into walls (t > 0; other values panic
//     ErrBadImpassableCost).
//
// Errors (sentinel):
//
//   - ErrNilGraph:        Search was handed a nil graph.
//   - ErrCoordOutOfBounds: start or goal lies outside the grid. Bounds are a
//     precondition checked before the search runs, never mid-flight.
//
// Example usage:
//
//	res, err := dijkstra.Search(g, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range res.Path() {
//	    fmt.Println(c)
//	}
//
// Thread safety:
//
//   - Search allocates all mutable state per call; concurrent searches over
//     the same (immutable) graph are safe. A search that is no longer
//     wanted may simply be abandoned — it holds no locks or resources.
package dijkstra
