// Package grid provides the 2D primitives every other maze component is
// built on: Point coordinates, the generic flat-backed Grid[T] matrix,
// and the von Neumann neighbour enumerator.
//
// What:
//
//   - Point identifies a cell by (Row, Col); used by value everywhere.
//   - Grid[T] owns a single contiguous row-major buffer of rows×cols
//     elements, fully initialized to T's zero value at construction.
//   - At/Set give bounds-checked read/write access; out-of-range access
//     is a caller bug and panics rather than being coerced or silently
//     tolerated.
//   - Neighbours yields the four axis-aligned candidates of a cell in a
//     fixed N, E, S, W order, without any bounds filtering.
//
// Why:
//
//   - A dense boolean grid is the natural maze representation: adjacency
//     is implicit, lookups are O(1), and the whole structure is one
//     allocation.
//   - Separating enumeration from validation keeps the enumerator total
//     (always exactly four candidates) and forces every consumer to make
//     its bounds handling explicit via InBounds.
//
// Complexity:
//
//   - New:            O(rows×cols) time and memory.
//   - At/Set/InBounds/Index/Coordinate/Neighbours: O(1).
//   - Clone:          O(rows×cols).
//
// Errors:
//
//	None. Every misuse (non-positive dimensions, out-of-range access) is
//	a contract violation and panics; correct callers gate every candidate
//	Point through InBounds first.
package grid
