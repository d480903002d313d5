// Package maze generates random rectangular mazes and computes shortest
// escape paths through them — procedural grid content plus a verifiably
// correct solver.
//
// What:
//
//   - Maze wraps a boolean grid.Grid: true = wall, false = open floor.
//   - Generate carves a maze with the randomized Prim's algorithm,
//     starting from a single random boundary exit; the carved cells
//     always form one connected, loop-free tree.
//   - Solve runs an unweighted breadth-first search from an open start
//     cell to the nearest open boundary cell and reconstructs the
//     shortest path, start → exit inclusive.
//   - FromBools builds a Maze from explicit wall data, New a fully
//     walled one for hosts that carve by hand.
//   - The grid/ subpackage holds the foundations: Point, the generic
//     flat-backed Grid[T] matrix, and the von Neumann neighbour
//     enumerator.
//
// Why:
//
//   - Games and visualizations need procedurally generated grid content
//     that is guaranteed solvable from every open cell.
//   - The tree-shaped carve invariant makes the path between any two
//     open cells unique, so solver output is easy to validate.
//
// Complexity (n = rows, m = cols):
//
//   - Generate: O(n×m) time and memory (each cell enters the frontier a
//     bounded number of times).
//   - Solve:    O(n×m) time and memory for the cost field; path length
//     is bounded by n×m.
//
// Options:
//
//   - WithRand(r): draw all generation randomness from r.
//   - WithSeed(s): deterministic generation from a fixed seed.
//   - Default: a fresh time-seeded source per call, so repeated calls
//     produce different mazes unless the host seeds explicitly.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: FromBools rejected its input.
//   - ErrStartBlocked: Solve's start cell is a wall.
//   - ErrNoPath: no open boundary cell is reachable from start.
//
// Out-of-range Points and non-positive dimensions are contract
// violations and panic; "unsolvable from here" is an expected domain
// outcome and is always reported as a sentinel error, never a panic.
//
// Quick ASCII example (1 = wall, 0 = open):
//
//	    10111
//	    10011
//	    11001
//
//	a 3×5 maze whose open cells form a single corridor to the top edge.
//
//	go get github.com/dikuchan/maze
package maze
