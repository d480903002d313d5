package maze

import "github.com/dikuchan/maze/grid"

// New constructs a fully walled rows×cols Maze for hosts that carve by
// hand. Panics on non-positive dimensions.
// Complexity: O(rows×cols).
func New(rows, cols int) *Maze {
	cells := grid.New[bool](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells.Set(grid.Point{Row: r, Col: c}, true)
		}
	}
	return &Maze{cells: cells}
}

// FromBools constructs a Maze from explicit wall data (true = wall).
// The input is deep-copied, so later mutation of rows never affects the
// maze. Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols).
func FromBools(rows [][]bool) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n, m := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != m {
			return nil, ErrNonRectangular
		}
	}
	cells := grid.New[bool](n, m)
	for r := 0; r < n; r++ {
		for c := 0; c < m; c++ {
			cells.Set(grid.Point{Row: r, Col: c}, rows[r][c])
		}
	}
	return &Maze{cells: cells}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Maze) Rows() int { return m.cells.Rows() }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Maze) Cols() int { return m.cells.Cols() }

// InBounds reports whether p lies within the maze.
// Complexity: O(1).
func (m *Maze) InBounds(p grid.Point) bool { return m.cells.InBounds(p) }

// IsWall reports whether the cell at p is a wall.
// Precondition: m.InBounds(p); violation panics.
// Complexity: O(1).
func (m *Maze) IsWall(p grid.Point) bool { return m.cells.At(p) }

// Carve opens the cell at p (clears its wall).
// Precondition: m.InBounds(p); violation panics.
// Complexity: O(1).
func (m *Maze) Carve(p grid.Point) { m.cells.Set(p, false) }

// Block walls the cell at p.
// Precondition: m.InBounds(p); violation panics.
// Complexity: O(1).
func (m *Maze) Block(p grid.Point) { m.cells.Set(p, true) }

// IsExit reports whether p is an exit: an open cell on the outer
// boundary. Any open boundary cell qualifies, not only the cell carved
// first during generation, so Solve works on arbitrary mazes.
// Precondition: m.InBounds(p); violation panics.
// Complexity: O(1).
func (m *Maze) IsExit(p grid.Point) bool {
	if m.cells.At(p) {
		return false
	}
	return p.Row == 0 || p.Row == m.Rows()-1 || p.Col == 0 || p.Col == m.Cols()-1
}

// Grid returns the underlying boolean grid for hosts that want direct
// indexed access, e.g. to render the maze themselves.
func (m *Maze) Grid() *grid.Grid[bool] { return m.cells }
