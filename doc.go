// Package terrapath generates tile-based terrain from coherent noise and
// routes across it at least cost.
//
// 🚀 What is terrapath?
//
//	A small, focused library that brings together:
//		• Noise fields: seeded fractal Perlin sampling, fully deterministic
//		• Terrain grids: noise → {DeepWater, Water, Grass, Mountain} with fixed traversal costs
//		• Grid graphs: 4-directional adjacency with destination-cell edge costs
//		• Least-cost routing: uniform-cost (Dijkstra) search with path reconstruction
//
// ✨ Why choose terrapath?
//
//   - Deterministic – same seed, same map, every time
//   - Rock-solid guarantees – immutable grids, sentinel errors, no hidden state
//   - Pure Go – no cgo, no rendering or input dependencies
//   - Composable – the grid, the graph view and the search are separate pieces
//
// Everything is organized under four subpackages:
//
//	noise/     — seeded 2D fractal Perlin field (Sample is pure and total)
//	terrain/   — Coord, Category, classification thresholds, Grid generation
//	gridgraph/ — read-only 4-neighbor graph view over a terrain.Grid
//	dijkstra/  — uniform-cost search start→goal + path reconstruction
//
// Quick ASCII example:
//
//	    G G G        G = Grass (cost 1)
//	    G M G        M = Mountain (cost 8)
//	    G G G
//
//	the cheapest route from the left edge to the right edge goes around
//	the mountain (total cost 4), not through it (cost 9).
//
// Rendering, input capture and frame timing are deliberately out of scope:
// terrapath hands back the classified grid and the ordered path, and the
// surrounding application draws them however it likes.
//
//	go get github.com/katalvlaran/terrapath
package terrapath
