// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// implicit grid graph of a terrain map.
//
// The search is uniform-cost: it expands cells in order of accumulated
// traversal cost, relaxes the ≤4 orthogonal neighbors of each popped cell,
// and terminates as soon as the goal is popped (all costs are positive, so
// the first pop of the goal is optimal) or the frontier drains (goal
// unreachable — a defined outcome, not an error).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

// Search runs a uniform-cost search over g from start to goal and returns
// the predecessor and cost maps wrapped in a Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must lie inside the grid (ErrCoordOutOfBounds).
//  3. goal must lie inside the grid (ErrCoordOutOfBounds).
//
// An unreachable goal is not an error: Result.Found is false and
// Result.Path returns an empty slice.
//
// Complexity: O(E log V), V = cols×rows, E = 4V.
func Search(g *gridgraph.Graph, start, goal terrain.Coord, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate both endpoints before touching the frontier: bounds are a
	//    caller-side precondition, rejected up front rather than discovered
	//    mid-search through undefined neighbor behavior.
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCoordOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrCoordOutOfBounds, goal)
	}

	// 4) Prepare per-search state. Capacity hints assume a small explored
	//    region; maps grow as the frontier spreads.
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		cameFrom: map[terrain.Coord]terrain.Coord{
			start: start, // the origin sentinel: a cell is the start iff it maps to itself
		},
		costSoFar: map[terrain.Coord]int{start: 0},
		visited:   make(map[terrain.Coord]bool),
		pq:        make(cellPQ, 0, 64),
	}

	// 5) Run the frontier loop to completion (or early goal exit).
	found := r.process(start)

	return &Result{
		Start:     start,
		Goal:      goal,
		CameFrom:  r.cameFrom,
		CostSoFar: r.costSoFar,
		Found:     found,
	}, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g         *gridgraph.Graph                // read-only graph view
	options   Options                         // cost cap and wall threshold
	goal      terrain.Coord                   // early-exit target
	cameFrom  map[terrain.Coord]terrain.Coord // cell → predecessor on cheapest known route
	costSoFar map[terrain.Coord]int           // cell → best known accumulated cost
	visited   map[terrain.Coord]bool          // cells whose cost is finalized
	pq        cellPQ                          // lazy min-heap frontier
}

// process drives the frontier until the goal is popped or the frontier
// drains. Returns whether the goal was reached.
func (r *runner) process(start terrain.Coord) bool {
	// Seed the frontier with the start at cost zero.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: start, cost: 0})

	for r.pq.Len() > 0 {
		// 1) Pop the lowest-cost frontier entry.
		item := heap.Pop(&r.pq).(*cellItem)
		cur := item.cell

		// 2) Skip stale duplicates: a cheaper entry for this cell was
		//    already finalized (lazy decrease-key).
		if r.visited[cur] {
			continue
		}
		r.visited[cur] = true

		// 3) Early exit: with positive edge costs the first pop of the goal
		//    carries its optimal cost, so nothing further can improve it.
		if cur == r.goal {
			return true
		}

		// 4) Relax each in-bounds orthogonal neighbor.
		r.relax(cur)
	}

	// Frontier drained without popping the goal: unreachable.
	return false
}

// relax attempts to improve the recorded cost of every neighbor of cur.
// Assumes costSoFar[cur] is finalized.
func (r *runner) relax(cur terrain.Coord) {
	base := r.costSoFar[cur]
	for _, next := range r.g.Neighbors(cur) {
		stepCost := r.g.Cost(cur, next)

		// Cells at or above the impassable threshold are walls.
		if stepCost >= r.options.ImpassableCost {
			continue
		}

		candidate := base + stepCost

		// Respect the exploration cap.
		if candidate > r.options.MaxCost {
			continue
		}

		// Strict improvement only: an equal candidate would be a harmless
		// but redundant re-expansion, so it is rejected here.
		if prev, ok := r.costSoFar[next]; ok && candidate >= prev {
			continue
		}

		r.costSoFar[next] = candidate
		r.cameFrom[next] = cur
		heap.Push(&r.pq, &cellItem{cell: next, cost: candidate})
	}
}

// cellItem is one frontier entry: a cell and its accumulated cost at the
// time it was pushed. Duplicates for one cell may coexist; only the first
// (cheapest) pop matters.
type cellItem struct {
	cell terrain.Coord
	cost int
}

// cellPQ is a min-heap of *cellItem ordered by cost ascending, used with
// the lazy decrease-key strategy: improvements push fresh entries and
// stale ones are skipped at pop time via the visited set.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders items by accumulated cost: smaller cost → higher priority.
// Ties are broken arbitrarily; correctness does not depend on tie order
// since all edge costs are positive.
func (pq cellPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element onto the heap; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
