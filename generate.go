package maze

import (
	"math/rand"

	"github.com/dikuchan/maze/grid"
)

// Generate carves a rows×cols maze with the randomized Prim's algorithm.
// Panics on non-positive dimensions (contract violation); otherwise it
// always succeeds — the algorithm terminates unconditionally and the
// carved cells form one connected, loop-free tree containing the exit,
// so every open cell can reach the boundary.
//
// Steps:
//  1. Start fully walled.
//  2. Pick one boundary exit uniformly at random: a random row and
//     column, then a coin flip decides whether the exit sits on the
//     left edge (col forced to 0) or the top edge (row forced to 0);
//     carve it.
//  3. Seed the frontier with every in-bounds, still-walled neighbour of
//     the exit.
//  4. Repeatedly remove a uniformly random cell from the frontier. If
//     fewer than two of its in-bounds neighbours are already open,
//     carving it cannot close a loop: carve it and push its in-bounds,
//     still-walled neighbours. Otherwise discard it.
//  5. Stop when the frontier drains. Only walled cells are ever pushed
//     and a carved cell can never be pushed again, so the frontier is
//     monotonically consumed in O(rows×cols) iterations.
//
// The frontier may hold duplicates of a cell reachable from several
// carved neighbours; removal is uniform over entries, so duplicated
// cells are simply more likely to be drawn first. That skew is part of
// the algorithm, not a defect.
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, opts ...Option) *Maze {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand

	m := New(rows, cols)

	// Choose the boundary exit.
	exit := grid.Point{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	if rng.Intn(2) == 0 {
		exit.Col = 0
	} else {
		exit.Row = 0
	}
	m.Carve(exit)

	// Seed the frontier with the exit's walled neighbours.
	frontier := make([]grid.Point, 0, rows*cols)
	for _, n := range grid.Neighbours(exit) {
		if m.InBounds(n) && m.IsWall(n) {
			frontier = append(frontier, n)
		}
	}

	for len(frontier) > 0 {
		current := removeRandom(&frontier, rng)

		open := 0
		for _, n := range grid.Neighbours(current) {
			if m.InBounds(n) && !m.IsWall(n) {
				open++
			}
		}
		if open >= 2 {
			// A second connection into the carved tree would close a
			// loop; discard without carving.
			continue
		}

		m.Carve(current)
		for _, n := range grid.Neighbours(current) {
			if m.InBounds(n) && m.IsWall(n) {
				frontier = append(frontier, n)
			}
		}
	}

	return m
}

// removeRandom extracts a uniformly random element from *cells by
// swapping it with the last element and popping. O(1), uniform, and
// order-destroying — fine for an unordered candidate set.
func removeRandom(cells *[]grid.Point, rng *rand.Rand) grid.Point {
	s := *cells
	i := rng.Intn(len(s))
	last := len(s) - 1
	s[i], s[last] = s[last], s[i]
	p := s[last]
	*cells = s[:last]
	return p
}
