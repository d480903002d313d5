package maze

import "github.com/dikuchan/maze/grid"

// Solve finds a shortest path of open cells from start to the nearest
// exit — any open cell on the outer boundary. The returned path runs
// start → exit inclusive; consecutive cells are von Neumann adjacent.
//
// Returns ErrStartBlocked when start is a wall (checked before any
// search) and ErrNoPath when the reachable region touches no boundary
// cell. Both are expected domain outcomes, never panics. An out-of-range
// start is a contract violation and panics.
//
// Search: unweighted BFS over open cells with a FIFO frontier. The cost
// field records 1 + distance-from-start per visited cell, so zero
// unambiguously means "unvisited" and doubles as the visited flag. BFS
// discovers exits in non-decreasing distance, so the first exit found
// is at minimal distance and the path length equals the exit's recorded
// cost. Ties between equally short paths are broken by the fixed
// neighbour order (north, east, south, west), so the exact path is
// reproducible.
//
// Reconstruction walks the cost field downhill from the exit: from each
// cell, step to the first neighbour (in enumeration order) with a
// nonzero cost strictly below the current one (BFS costs decrease
// monotonically toward the start), then reverse.
//
// Complexity: O(rows×cols) time and memory.
func (m *Maze) Solve(start grid.Point) (Path, error) {
	if m.IsWall(start) {
		return nil, ErrStartBlocked
	}
	if m.IsExit(start) {
		return Path{start}, nil
	}

	costs := grid.New[int](m.Rows(), m.Cols())
	costs.Set(start, 1)

	queue := make([]grid.Point, 0, m.Rows()*m.Cols())
	queue = append(queue, start)

	var exit grid.Point
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		for _, next := range grid.Neighbours(current) {
			if !m.InBounds(next) || m.IsWall(next) || costs.At(next) != 0 {
				continue
			}
			costs.Set(next, costs.At(current)+1)
			queue = append(queue, next)
			if m.IsExit(next) {
				exit = next
				found = true
			}
		}
	}

	if !found {
		return nil, ErrNoPath
	}

	return restore(costs, exit, start), nil
}

// restore rebuilds the path by descending the cost field from exit to
// start, then flips it to read start → exit.
func restore(costs *grid.Grid[int], exit, start grid.Point) Path {
	path := Path{exit}
	current := exit

	for current != start {
		for _, next := range grid.Neighbours(current) {
			if !costs.InBounds(next) {
				continue
			}
			if c := costs.At(next); c != 0 && c < costs.At(current) {
				current = next
				path = append(path, current)
				break
			}
		}
	}

	// Reverse in place: the walk collected exit → start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
