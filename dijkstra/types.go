// Package dijkstra defines options, sentinel errors and the search result
// type for uniform-cost search over a grid graph.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/terrapath/terrain"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCoordOutOfBounds indicates that the start or goal coordinate lies
	// outside the grid. This is a precondition violation: callers derive
	// cells from raw input and must validate them at the boundary.
	ErrCoordOutOfBounds = errors.New("dijkstra: coordinate out of bounds")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassableCost indicates that ImpassableCost was set to zero or
	// a negative value, which would make every cell a wall.
	ErrBadImpassableCost = errors.New("dijkstra: ImpassableCost must be positive")
)

// Options configures the behavior of a single Search call.
//
// MaxCost        – cap on accumulated cost; cells beyond it are not explored.
// ImpassableCost – cells with category cost ≥ this threshold are walls.
type Options struct {
	MaxCost        int
	ImpassableCost int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxCost caps exploration: a cell whose accumulated cost would exceed
// max is never relaxed. Must be non-negative; negative values panic with
// ErrBadMaxCost. Default is math.MaxInt (no cap).
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithImpassableCost declares every cell whose category cost is ≥ threshold
// impassable: the search never enters it. Must be positive; zero or negative
// values panic with ErrBadImpassableCost. Default is math.MaxInt (no walls).
func WithImpassableCost(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassableCost.Error())
		}
		o.ImpassableCost = threshold
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: no cost cap, no impassable cells.
func DefaultOptions() Options {
	return Options{
		MaxCost:        math.MaxInt,
		ImpassableCost: math.MaxInt,
	}
}

// Result holds the outcome of one Search: the predecessor and cost maps
// plus the endpoints they were computed for. A Result is produced fresh per
// search and never mutated afterwards.
//
// CameFrom maps each reached cell to its predecessor on the cheapest known
// route; the start cell maps to itself (the “none” sentinel — a cell is the
// search origin iff CameFrom[c] == c). CostSoFar maps each reached cell to
// its minimal accumulated cost; unreached cells are absent from both maps.
type Result struct {
	Start     terrain.Coord
	Goal      terrain.Coord
	CameFrom  map[terrain.Coord]terrain.Coord
	CostSoFar map[terrain.Coord]int
	Found     bool
}

// Cost returns the minimal accumulated cost from start to goal and true,
// or (0, false) when the goal was not reached.
func (r *Result) Cost() (int, bool) {
	if !r.Found {
		return 0, false
	}

	return r.CostSoFar[r.Goal], true
}

// Path reconstructs the start→goal route by walking CameFrom backwards
// from the goal and reversing. Returns the ordered cells from start to
// goal inclusive; a single-element path when start == goal; an empty slice
// when the goal is unreachable. The returned slice is owned by the caller
// and independent of the Result.
// Complexity: O(path length).
func (r *Result) Path() []terrain.Coord {
	if _, ok := r.CameFrom[r.Goal]; !ok {
		return nil // goal never relaxed: unreachable
	}

	path := []terrain.Coord{r.Goal}
	for cur := r.Goal; cur != r.Start; {
		prev, ok := r.CameFrom[cur]
		if !ok {
			return nil // broken chain: treat as unreachable
		}
		path = append(path, prev)
		cur = prev
	}

	// Reverse into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
