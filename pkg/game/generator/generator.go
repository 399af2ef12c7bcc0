// Package generator builds maze grids.
package generator

import (
	"errors"
	"math/rand/v2"

	"mazerunner/pkg/engine/world"
)

// Default maze dimensions (including the 1-cell wall border)
const (
	DefaultRows = 20
	DefaultCols = 50

	// MinCols is the narrowest grid that still leaves an interior inside the border
	MinCols = 3
	// MinRows keeps the roughened bottom row clear of the carved top row.
	// With three rows they coincide and almost no grid is solvable.
	MinRows = 4
)

// ErrGridTooSmall is returned when a generator is asked for a grid with no carve-able interior
var ErrGridTooSmall = errors.New("grid too small to carve")

// GridGenerator is an interface for maze generation algorithms.
// Generation must depend only on the dimensions and the given random source.
type GridGenerator interface {
	Generate(rng *rand.Rand) *world.Grid
	Name() string
}

// NewRand returns a deterministic random source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
