package setup

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/state"
)

// ErrNoSolvableMaze is returned when the attempt limit is hit before a solvable grid appears
var ErrNoSolvableMaze = errors.New("no solvable maze generated")

// BuildMaze generates grids until one is solvable. maxAttempts <= 0 means no
// limit. Returns the accepted grid and how many grids were generated.
func BuildMaze(gen generator.GridGenerator, rng *rand.Rand, maxAttempts int, log logrus.FieldLogger) (*world.Grid, int, error) {
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		grid := gen.Generate(rng)
		if IsSolvable(grid) {
			if log != nil {
				log.WithFields(logrus.Fields{
					"generator": gen.Name(),
					"attempt":   attempt,
				}).Info("maze accepted")
			}
			return grid, attempt, nil
		}
		if log != nil {
			log.WithField("attempt", attempt).Debug("maze rejected: exit unreachable")
		}
	}
	return nil, maxAttempts, fmt.Errorf("%w after %d attempts", ErrNoSolvableMaze, maxAttempts)
}

// NewGame builds a solvable maze and returns a session with the player on
// the entrance, which is marked as the start cell
func NewGame(rows, cols int, seed uint64, maxAttempts int, log logrus.FieldLogger) (*state.Game, error) {
	gen, err := generator.New(rows, cols)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log = log.WithFields(logrus.Fields{"rows": rows, "cols": cols, "seed": seed})
	}

	grid, attempts, err := BuildMaze(gen, generator.NewRand(seed), maxAttempts, log)
	if err != nil {
		return nil, err
	}

	entrance := generator.Entrance()
	grid.Set(entrance.Row, entrance.Col, world.Start)

	g := state.NewGame(grid, entrance)
	g.Seed = seed
	g.Attempts = attempts
	g.SetLogger(log)

	return g, nil
}
