package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/stack"

	"mazerunner/pkg/engine/world"
)

// Probability that a cell of the bottom corridor row is left open
const bottomRowOpenChance = 0.7

// carveSteps are the two-cell moves used while carving, so a wall always
// remains between neighbouring corridors
var carveSteps = [4]world.Point{
	{Row: 0, Col: -2},
	{Row: 0, Col: 2},
	{Row: -2, Col: 0},
	{Row: 2, Col: 0},
}

// BacktrackerGenerator carves mazes with randomized depth-first backtracking,
// then opens an exit corridor and roughens the bottom corridor row
type BacktrackerGenerator struct {
	rows int
	cols int

	// SkipBottomRowVariation leaves the carved perfect maze untouched apart
	// from the exit and the left corridor
	SkipBottomRowVariation bool
}

// New creates a backtracking generator for rows x cols grids
func New(rows, cols int) (*BacktrackerGenerator, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrGridTooSmall, rows, cols, MinRows, MinCols)
	}
	return &BacktrackerGenerator{rows: rows, cols: cols}, nil
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Rows returns the height of generated grids
func (g *BacktrackerGenerator) Rows() int {
	return g.rows
}

// Cols returns the width of generated grids
func (g *BacktrackerGenerator) Cols() int {
	return g.cols
}

// Entrance is the cell carving starts from and the player spawns on
func Entrance() world.Point {
	return world.Point{Row: 1, Col: 1}
}

// ExitPosition returns where the exit is placed for the given dimensions
func ExitPosition(rows, cols int) world.Point {
	return world.Point{Row: rows - 2, Col: cols - 2}
}

// Generate creates a new maze. The result always holds exactly one Exit
// but is not guaranteed to be solvable.
func (g *BacktrackerGenerator) Generate(rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(g.rows, g.cols)

	carve(grid, Entrance(), rng)

	exit := ExitPosition(g.rows, g.cols)
	grid.Set(exit.Row, exit.Col, world.Exit)

	// Clear corridor down the left side
	for row := 1; row < g.rows-2; row++ {
		grid.Set(row, 1, world.Open)
	}

	if !g.SkipBottomRowVariation {
		roughenBottomRow(grid, rng)
	}

	return grid
}

// carveFrame is one level of the carve: a cell and the order its
// neighbours are visited in
type carveFrame struct {
	at    world.Point
	steps [4]world.Point
	next  int
}

// carve opens a spanning tree of corridors rooted at start. It walks the
// same order a recursive carve would, using an explicit stack so the
// depth is not bounded by the call stack.
func carve(grid *world.Grid, start world.Point, rng *rand.Rand) {
	frames := stack.New[*carveFrame]()
	frames.Push(enter(grid, start, rng))

	for frames.Size() > 0 {
		frame := frames.Peek()
		if frame.next >= len(frame.steps) {
			frames.Pop()
			continue
		}

		step := frame.steps[frame.next]
		frame.next++

		target := world.Point{Row: frame.at.Row + step.Row, Col: frame.at.Col + step.Col}
		if !grid.IsPlayablePosition(target.Row, target.Col) || grid.At(target) != world.Wall {
			continue
		}

		// Punch through the wall between the two cells
		grid.Set(frame.at.Row+step.Row/2, frame.at.Col+step.Col/2, world.Open)
		frames.Push(enter(grid, target, rng))
	}
}

// enter opens a cell and prepares its shuffled neighbour order
func enter(grid *world.Grid, at world.Point, rng *rand.Rand) *carveFrame {
	grid.Set(at.Row, at.Col, world.Open)
	frame := &carveFrame{at: at, steps: carveSteps}
	shuffle(frame.steps[:], rng)
	return frame
}

// shuffle is a Fisher-Yates shuffle running from the last index down to 1
func shuffle[T any](items []T, rng *rand.Rand) {
	for n := len(items) - 1; n > 0; n-- {
		k := rng.IntN(n + 1)
		items[k], items[n] = items[n], items[k]
	}
}

// roughenBottomRow redraws the row above the bottom border so it holds
// loops and dead ends, then keeps the cell beside the exit open
func roughenBottomRow(grid *world.Grid, rng *rand.Rand) {
	row := grid.Rows() - 2
	for col := 1; col < grid.Cols()-2; col++ {
		if rng.Float64() > bottomRowOpenChance {
			grid.Set(row, col, world.Wall)
		} else {
			grid.Set(row, col, world.Open)
		}
	}

	beside := grid.Cols() - 3
	if beside >= 1 && grid.Get(row, beside) == world.Wall {
		grid.Set(row, beside, world.Open)
	}
}
