// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/setup"
	"mazerunner/pkg/game/state"
)

// glyphPath marks cells on the shortest route in the solved map
const glyphPath = '.'

// ErrNoGrid is returned when the session has no maze to dump
var ErrNoGrid = errors.New("no grid")

// DumpMaze writes a plain-text dump of the session: metadata, legend, the
// maze with the player, and the maze with a shortest route drawn in.
func DumpMaze(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return ErrNoGrid
	}

	start := setup.StartOf(g.Grid)
	path, solvable := setup.ShortestPath(g.Grid, start)
	exit, _ := g.Grid.Find(world.Exit)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.ID)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "attempts: %d\n", g.Attempts)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row:col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "start_cell: %s\n", start)
	fmt.Fprintf(w, "exit_cell: %s\n", exit)
	fmt.Fprintf(w, "player_cell: %s\n", g.Player)
	fmt.Fprintf(w, "open_cells: %d\n", g.Grid.Count(world.Open))
	fmt.Fprintf(w, "solvable: %v\n", solvable)
	if solvable {
		fmt.Fprintf(w, "shortest_path_steps: %d\n", len(path)-1)
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = wall  %c = open  %c = start  %c = exit  %c = player  %c = shortest route\n",
		world.GlyphWall, world.GlyphOpen, world.GlyphStart, world.GlyphExit, world.GlyphPlayer, glyphPath)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g.Grid, func(p world.Point) (rune, bool) {
		return world.GlyphPlayer, p == g.Player
	})
	fmt.Fprintln(w, "")

	// --- Solution ---
	fmt.Fprintln(w, "--- Map (shortest route) ---")
	onPath := make(map[world.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	writeMapGrid(w, g.Grid, func(p world.Point) (rune, bool) {
		return glyphPath, onPath[p] && g.Grid.At(p) == world.Open
	})

	return nil
}

// writeMapGrid writes the grid, letting overlay replace individual glyphs
func writeMapGrid(w io.Writer, grid *world.Grid, overlay func(world.Point) (rune, bool)) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			p := world.Point{Row: row, Col: col}
			if r, ok := overlay(p); ok {
				fmt.Fprintf(w, "%c", r)
				continue
			}
			fmt.Fprintf(w, "%c", grid.At(p).Glyph())
		}
		fmt.Fprintln(w)
	}
}
