package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dikuchan/maze"
	"github.com/dikuchan/maze/grid"
)

// fromInts builds a Maze from 1/0 literal rows (1 = wall, 0 = open),
// failing the test on malformed input.
func fromInts(t *testing.T, rows [][]int) *maze.Maze {
	t.Helper()
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, v := range row {
			cells[r][c] = v != 0
		}
	}
	m, err := maze.FromBools(cells)
	require.NoError(t, err)
	return m
}

// openCells lists every open cell of m in row-major order.
func openCells(m *maze.Maze) []grid.Point {
	var open []grid.Point
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			p := grid.Point{Row: r, Col: c}
			if !m.IsWall(p) {
				open = append(open, p)
			}
		}
	}
	return open
}

// requireValidPath asserts the structural path properties: non-empty,
// starts at start, ends on an open boundary cell, every cell open, and
// consecutive cells von Neumann adjacent.
func requireValidPath(t *testing.T, m *maze.Maze, start grid.Point, path maze.Path) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at the start cell")
	require.True(t, m.IsExit(path[len(path)-1]), "path must end on an open boundary cell")

	for i, p := range path {
		require.True(t, m.InBounds(p), "path cell %v out of bounds", p)
		require.False(t, m.IsWall(p), "path cell %v is a wall", p)
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := p.Row-prev.Row, p.Col-prev.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		require.Equal(t, 1, dr+dc, "cells %v and %v are not adjacent", prev, p)
	}
}

// nearestExitDistance computes, independently of the solver, the BFS
// distance (in steps) from start to the closest open boundary cell, or
// -1 when none is reachable. Used to cross-check path minimality.
func nearestExitDistance(m *maze.Maze, start grid.Point) int {
	if m.IsWall(start) {
		return -1
	}
	dist := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if m.IsExit(current) {
			return dist[current]
		}
		for _, next := range grid.Neighbours(current) {
			if !m.InBounds(next) || m.IsWall(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return -1
}
