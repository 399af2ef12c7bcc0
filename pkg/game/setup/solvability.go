// Package setup prepares playable mazes: solvability checks and the
// generate-until-solvable loop.
package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
)

// IsSolvable reports whether the exit can be reached from the start cell.
// Freshly generated grids carry no Start marker, so the entrance (1,1)
// is used when none is present.
func IsSolvable(grid *world.Grid) bool {
	return IsSolvableFrom(grid, StartOf(grid))
}

// StartOf returns the Start cell of the grid, or the entrance if none is marked
func StartOf(grid *world.Grid) world.Point {
	if p, ok := grid.Find(world.Start); ok {
		return p
	}
	return generator.Entrance()
}

// IsSolvableFrom runs a breadth-first search over walkable 4-neighbours and
// returns true as soon as an Exit cell is dequeued. The grid is not modified.
func IsSolvableFrom(grid *world.Grid, start world.Point) bool {
	_, found := search(grid, start, nil)
	return found
}

// ShortestPath returns the cells of a shortest route from start to the exit,
// both ends included
func ShortestPath(grid *world.Grid, start world.Point) ([]world.Point, bool) {
	cameFrom := make(map[world.Point]world.Point)
	exit, found := search(grid, start, cameFrom)
	if !found {
		return nil, false
	}

	path := []world.Point{exit}
	for at := exit; at != start; {
		at = cameFrom[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// search is the BFS shared by the solvability checks. When cameFrom is not
// nil it records the parent of every discovered cell.
func search(grid *world.Grid, start world.Point, cameFrom map[world.Point]world.Point) (world.Point, bool) {
	if grid == nil || !grid.IsValidPosition(start.Row, start.Col) || !grid.At(start).IsWalkable() {
		return world.Point{}, false
	}

	visited := mapset.New[world.Point]()
	frontier := queue.New[world.Point]()

	visited.Put(start)
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()

		if grid.At(current) == world.Exit {
			return current, true
		}

		for _, dir := range world.AllDirections() {
			next := current.Step(dir)
			if !grid.IsValidPosition(next.Row, next.Col) || !grid.At(next).IsWalkable() || visited.Has(next) {
				continue
			}
			visited.Put(next)
			if cameFrom != nil {
				cameFrom[next] = current
			}
			frontier.Enqueue(next)
		}
	}

	return world.Point{}, false
}
