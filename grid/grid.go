package grid

import "fmt"

// New constructs a rows×cols Grid with every cell set to T's zero value.
// Non-positive dimensions are a contract violation and panic: a grid
// without cells has no meaningful operations.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int) *Grid[T] {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("grid: non-positive dimensions %d×%d", rows, cols))
	}
	return &Grid[T]{
		data: make([]T, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// InBounds reports whether p lies within [0,rows)×[0,cols).
// Every Point produced by Neighbours must pass through this check
// before being used with At or Set.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the value stored at p.
// Precondition: g.InBounds(p). Violation panics — an out-of-range read
// is a caller bug, not a runtime condition.
// Complexity: O(1).
func (g *Grid[T]) At(p Point) T {
	g.check(p)
	return g.data[g.Index(p)]
}

// Set stores v at p, touching no other cell.
// Precondition: g.InBounds(p). Violation panics.
// Complexity: O(1).
func (g *Grid[T]) Set(p Point, v T) {
	g.check(p)
	g.data[g.Index(p)] = v
}

// Index maps p to its row-major position: p.Row*cols + p.Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Clone returns a deep copy of g. Mutating the copy never affects the
// original.
// Complexity: O(rows×cols).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, rows: g.rows, cols: g.cols}
}

// check panics when p is out of range.
func (g *Grid[T]) check(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point (%d,%d) out of range %d×%d", p.Row, p.Col, g.rows, g.cols))
	}
}
