package setup

import (
	"errors"
	"math/rand/v2"
	"testing"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
)

// flakyGenerator returns sealed mazes until `failures` grids have been handed out
type flakyGenerator struct {
	failures int
	calls    int
}

func (f *flakyGenerator) Name() string { return "flaky" }

func (f *flakyGenerator) Generate(rng *rand.Rand) *world.Grid {
	f.calls++
	grid := world.NewGrid(3, 5)
	grid.Set(1, 1, world.Open)
	grid.Set(1, 3, world.Exit)
	if f.calls > f.failures {
		grid.Set(1, 2, world.Open)
	}
	return grid
}

func TestBuildMaze_RetriesUntilSolvable(t *testing.T) {
	gen := &flakyGenerator{failures: 4}
	grid, attempts, err := BuildMaze(gen, generator.NewRand(1), 0, nil)
	if err != nil {
		t.Fatalf("BuildMaze: %v", err)
	}
	if attempts != 5 || gen.calls != 5 {
		t.Errorf("attempts = %d, calls = %d; want 5", attempts, gen.calls)
	}
	if !IsSolvable(grid) {
		t.Error("BuildMaze returned an unsolvable grid")
	}
}

func TestBuildMaze_GivesUpAtLimit(t *testing.T) {
	gen := &flakyGenerator{failures: 100}
	grid, _, err := BuildMaze(gen, generator.NewRand(1), 3, nil)
	if !errors.Is(err, ErrNoSolvableMaze) {
		t.Fatalf("BuildMaze error = %v, want ErrNoSolvableMaze", err)
	}
	if grid != nil {
		t.Error("BuildMaze returned a grid alongside the error")
	}
	if gen.calls != 3 {
		t.Errorf("calls = %d, want 3", gen.calls)
	}
}

func TestBuildMaze_DefaultSizeAcceptedFirstTime(t *testing.T) {
	gen, err := generator.New(generator.DefaultRows, generator.DefaultCols)
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	for seed := uint64(0); seed < 25; seed++ {
		_, attempts, err := BuildMaze(gen, generator.NewRand(seed), 1, nil)
		if err != nil || attempts != 1 {
			t.Errorf("seed %d: attempts = %d, err = %v; want first maze accepted", seed, attempts, err)
		}
	}
}

func TestBuildMaze_TerminatesForOddSizes(t *testing.T) {
	// Odd sizes put carved cells on the roughened row, so some grids are rejected
	gen, err := generator.New(21, 31)
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	rng := generator.NewRand(5)
	for i := 0; i < 10; i++ {
		grid, attempts, err := BuildMaze(gen, rng, 1000, nil)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if attempts < 1 || !IsSolvable(grid) {
			t.Errorf("run %d: attempts = %d, solvable = %v", i, attempts, IsSolvable(grid))
		}
	}
}

func TestBuildMaze_ShallowMazesAcceptedFirstTime(t *testing.T) {
	// With four rows the carved row sits above the roughened one and the
	// exit is always reachable from it
	for cols := generator.MinCols; cols <= 60; cols++ {
		gen, err := generator.New(generator.MinRows, cols)
		if err != nil {
			t.Fatalf("generator.New(%d, %d): %v", generator.MinRows, cols, err)
		}
		for seed := uint64(0); seed < 10; seed++ {
			_, attempts, err := BuildMaze(gen, generator.NewRand(seed), 1, nil)
			if err != nil || attempts != 1 {
				t.Errorf("%dx%d seed %d: attempts = %d, err = %v", generator.MinRows, cols, seed, attempts, err)
			}
		}
	}
}

func TestNewGame_RejectsThreeRows(t *testing.T) {
	// Three rows would leave the retry loop spinning on a near-impossible maze
	_, err := NewGame(3, 50, 1, 0, nil)
	if !errors.Is(err, generator.ErrGridTooSmall) {
		t.Errorf("NewGame(3, 50) error = %v, want ErrGridTooSmall", err)
	}
}

func TestNewGame_PlacesPlayerOnStart(t *testing.T) {
	g, err := NewGame(generator.DefaultRows, generator.DefaultCols, 3, 0, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Player != generator.Entrance() {
		t.Errorf("Player = %v, want entrance", g.Player)
	}
	if g.Grid.At(g.Player) != world.Start || g.Grid.Count(world.Start) != 1 {
		t.Errorf("start marker missing or duplicated")
	}
	if g.Won || g.IsOver() {
		t.Error("new session already over")
	}
	if g.Attempts != 1 || g.Seed != 3 {
		t.Errorf("Attempts = %d, Seed = %d", g.Attempts, g.Seed)
	}
	if !IsSolvable(g.Grid) {
		t.Error("session grid is not solvable from its start marker")
	}
}

func TestNewGame_SameSeedSameMaze(t *testing.T) {
	a, err := NewGame(15, 25, 77, 0, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	b, err := NewGame(15, 25, 77, 0, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if !a.Grid.Equal(b.Grid) {
		t.Error("same seed produced different sessions")
	}
}

func TestNewGame_TooSmall(t *testing.T) {
	_, err := NewGame(2, 40, 1, 0, nil)
	if !errors.Is(err, generator.ErrGridTooSmall) {
		t.Errorf("NewGame(2, 40) error = %v, want ErrGridTooSmall", err)
	}
}
