package maze

import (
	"strings"

	"github.com/dikuchan/maze/grid"
)

// String renders the maze as text: one row per line, `1` for wall, `0`
// for open floor. A rendering convenience for inspection and debugging,
// not a stable wire format — no parser is provided.
// Complexity: O(rows×cols).
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.Rows() * (m.Cols() + 1))
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.IsWall(grid.Point{Row: r, Col: c}) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
