package grid

// neighbourOffsets lists the von Neumann deltas in the fixed traversal
// order every consumer relies on for deterministic tie-breaking:
// north, east, south, west.
var neighbourOffsets = [4][2]int{
	{-1, 0}, // north
	{0, 1},  // east
	{1, 0},  // south
	{0, -1}, // west
}

// Neighbours returns the four axis-aligned neighbour candidates of p in
// the order north, east, south, west. It performs NO bounds filtering:
// at an edge cell some candidates carry a negative or too-large
// coordinate, and callers must reject those with InBounds before any
// At/Set. Each call yields a fresh array, so the sequence is always
// exactly four elements and trivially restartable.
// Complexity: O(1).
func Neighbours(p Point) [4]Point {
	var ns [4]Point
	for i, d := range neighbourOffsets {
		ns[i] = Point{Row: p.Row + d[0], Col: p.Col + d[1]}
	}
	return ns
}
