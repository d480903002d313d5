// Package grid defines the core coordinate and matrix types shared by
// the maze generator and solver.
package grid

// Point identifies a single grid cell by row and column. Rows grow
// downward, columns grow rightward; (0,0) is the top-left cell.
//
// Coordinates are signed so that neighbour arithmetic may momentarily
// produce negative values (e.g. the northern neighbour of row 0); such
// candidates are rejected by an explicit InBounds check, never by
// unsigned wraparound.
type Point struct {
	Row, Col int
}

// Grid is a rectangular matrix of T backed by one contiguous row-major
// slice: the element at p lives at index p.Row*cols + p.Col. Every cell
// is initialized to T's zero value at construction; the grid is never
// partially uninitialized.
//
// Grid is not safe for concurrent mutation; callers sharing a grid
// across goroutines must synchronize externally.
type Grid[T any] struct {
	data []T
	rows int
	cols int
}
