// Package maze defines the Maze and Path types, sentinel errors, and
// functional options for maze generation.
package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/dikuchan/maze/grid"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates FromBools input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates FromBools input rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrStartBlocked indicates the solve start cell is a wall.
	ErrStartBlocked = errors.New("maze: start cell is a wall")
	// ErrNoPath indicates no open boundary cell is reachable from start.
	ErrNoPath = errors.New("maze: no path to an exit")
)

// Maze is a rectangular wall/floor grid: true marks a wall, false open
// floor. Generated mazes are meant to be read-only while being solved;
// hosts that mutate a maze concurrently with Solve must synchronize
// externally.
type Maze struct {
	cells *grid.Grid[bool]
}

// Path is an ordered sequence of cells from a solve start to an exit,
// inclusive of both endpoints. Consecutive elements are always von
// Neumann adjacent.
type Path []grid.Point

// Option configures maze generation via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of Generate.
type Options struct {
	// Rand supplies all generation randomness: the exit position, the
	// exit edge family, and every frontier draw.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a fresh time-seeded source, so
// each Generate call without options produces an independent maze.
// Note: *rand.Rand is not goroutine-safe; do not share one across
// concurrent Generate calls.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand draws all generation randomness from r. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed makes generation deterministic: the same seed always yields
// the same maze for the same dimensions.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}
