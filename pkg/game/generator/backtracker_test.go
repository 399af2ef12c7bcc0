// Package generator tests backtracking maze generation: determinism, border
// and exit invariants, and the spanning-tree shape of the raw carve.
package generator

import (
	"errors"
	"sort"
	"testing"

	"mazerunner/pkg/engine/world"
)

// countReachableOpenCells returns the number of walkable cells reachable from start via N/E/S/W.
func countReachableOpenCells(grid *world.Grid, start world.Point) int {
	if !grid.At(start).IsWalkable() {
		return 0
	}
	visited := map[world.Point]bool{start: true}
	queue := []world.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			n := p.Step(dir)
			if grid.At(n).IsWalkable() && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func mustNew(t *testing.T, rows, cols int) *BacktrackerGenerator {
	t.Helper()
	gen, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return gen
}

func TestNew_RejectsTooSmall(t *testing.T) {
	for _, dims := range [][2]int{{2, 10}, {10, 2}, {3, 50}, {3, 3}, {0, 0}, {-1, 5}} {
		_, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrGridTooSmall) {
			t.Errorf("New(%d, %d) error = %v, want ErrGridTooSmall", dims[0], dims[1], err)
		}
	}
	if _, err := New(MinRows, MinCols); err != nil {
		t.Errorf("New(%d, %d) = %v, want nil", MinRows, MinCols, err)
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	gen := mustNew(t, DefaultRows, DefaultCols)
	for seed := uint64(0); seed < 5; seed++ {
		a := gen.Generate(NewRand(seed))
		b := gen.Generate(NewRand(seed))
		if !a.Equal(b) {
			t.Errorf("seed %d produced different grids:\n%s\n%s", seed, a, b)
		}
	}
	if gen.Generate(NewRand(1)).Equal(gen.Generate(NewRand(2))) {
		t.Error("seeds 1 and 2 produced identical grids")
	}
}

func TestGenerate_BorderIsWall(t *testing.T) {
	sizes := [][2]int{{DefaultRows, DefaultCols}, {21, 31}, {4, 3}, {4, 7}, {9, 4}}
	for _, size := range sizes {
		gen := mustNew(t, size[0], size[1])
		for seed := uint64(0); seed < 20; seed++ {
			grid := gen.Generate(NewRand(seed))
			grid.ForEachCell(func(row, col int, sym world.Symbol) {
				if grid.IsOnPerimeter(row, col) && sym != world.Wall {
					t.Fatalf("%dx%d seed %d: border cell %d:%d = %v, want Wall", size[0], size[1], seed, row, col, sym)
				}
			})
		}
	}
}

func TestGenerate_SingleExitAtCorner(t *testing.T) {
	sizes := [][2]int{{DefaultRows, DefaultCols}, {21, 31}, {5, 5}, {4, 7}}
	for _, size := range sizes {
		gen := mustNew(t, size[0], size[1])
		want := ExitPosition(size[0], size[1])
		for seed := uint64(0); seed < 20; seed++ {
			grid := gen.Generate(NewRand(seed))
			if n := grid.Count(world.Exit); n != 1 {
				t.Fatalf("%dx%d seed %d: Count(Exit) = %d, want 1", size[0], size[1], seed, n)
			}
			if got, _ := grid.Find(world.Exit); got != want {
				t.Errorf("%dx%d seed %d: exit at %v, want %v", size[0], size[1], seed, got, want)
			}
		}
	}
}

func TestGenerate_LeftCorridorAndExitApproachOpen(t *testing.T) {
	gen := mustNew(t, DefaultRows, DefaultCols)
	for seed := uint64(0); seed < 20; seed++ {
		grid := gen.Generate(NewRand(seed))
		for row := 1; row < DefaultRows-2; row++ {
			if grid.Get(row, 1) != world.Open {
				t.Fatalf("seed %d: left corridor cell %d:1 = %v, want Open", seed, row, grid.Get(row, 1))
			}
		}
		if got := grid.Get(DefaultRows-2, DefaultCols-3); got != world.Open {
			t.Errorf("seed %d: cell beside exit = %v, want Open", seed, got)
		}
	}
}

func TestGenerate_NoStartMarker(t *testing.T) {
	grid := mustNew(t, DefaultRows, DefaultCols).Generate(NewRand(9))
	if n := grid.Count(world.Start); n != 0 {
		t.Errorf("Count(Start) = %d, want 0 (start is placed by the session)", n)
	}
}

func TestCarve_ProducesSpanningTree(t *testing.T) {
	const rows, cols = 21, 31
	for seed := uint64(0); seed < 10; seed++ {
		grid := world.NewGrid(rows, cols)
		carve(grid, Entrance(), NewRand(seed))

		// Every odd/odd cell is a tree node; each tree edge opens exactly one wall
		nodes := ((rows - 1) / 2) * ((cols - 1) / 2)
		if got, want := grid.Count(world.Open), 2*nodes-1; got != want {
			t.Errorf("seed %d: open cells = %d, want %d (tree with %d nodes)", seed, got, want, nodes)
		}
		if got := countReachableOpenCells(grid, Entrance()); got != grid.Count(world.Open) {
			t.Errorf("seed %d: %d open cells reachable of %d", seed, got, grid.Count(world.Open))
		}
		grid.ForEachCell(func(row, col int, sym world.Symbol) {
			if sym == world.Open && row%2 == 0 && col%2 == 0 {
				t.Errorf("seed %d: even/even cell %d:%d carved", seed, row, col)
			}
		})
	}
}

func TestGenerate_SkipBottomRowVariationKeepsEveryCellReachable(t *testing.T) {
	gen := mustNew(t, 21, 31)
	gen.SkipBottomRowVariation = true
	grid := gen.Generate(NewRand(4))
	total := grid.Count(world.Open) + grid.Count(world.Exit)
	if got := countReachableOpenCells(grid, Entrance()); got != total {
		t.Errorf("reachable = %d, want all %d walkable cells", got, total)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	rng := NewRand(11)
	for i := 0; i < 50; i++ {
		items := []int{0, 1, 2, 3, 4, 5}
		shuffle(items, rng)
		sorted := append([]int(nil), items...)
		sort.Ints(sorted)
		for j, v := range sorted {
			if v != j {
				t.Fatalf("shuffle lost or duplicated items: %v", items)
			}
		}
	}
}

func TestShuffle_ReachesEveryOrder(t *testing.T) {
	rng := NewRand(12)
	seen := make(map[[3]int]bool)
	for i := 0; i < 600; i++ {
		items := [3]int{0, 1, 2}
		shuffle(items[:], rng)
		seen[items] = true
	}
	if len(seen) != 6 {
		t.Errorf("shuffle produced %d of 6 orderings", len(seen))
	}
}
