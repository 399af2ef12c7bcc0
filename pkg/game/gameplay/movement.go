// Package gameplay provides core game logic for player movement and the session loop.
package gameplay

import (
	"github.com/sirupsen/logrus"

	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/setup"
	"mazerunner/pkg/game/state"
)

// CanEnter checks if the player may stand on p: inside the border and not a wall
func CanEnter(g *state.Game, p world.Point) bool {
	if g.Grid == nil || !g.Grid.IsPlayablePosition(p.Row, p.Col) {
		return false
	}
	return g.Grid.At(p).IsWalkable()
}

// Move attempts one step. Rejected steps leave the player where they are.
// Returns true if the player moved.
func Move(g *state.Game, dir world.Direction) bool {
	if g.IsOver() || !dir.IsValid() {
		return false
	}

	target := g.Player.Step(dir)
	if !CanEnter(g, target) {
		g.Bumps++
		g.Log.WithFields(logrus.Fields{"from": g.Player.String(), "dir": dir.String()}).Debug("move rejected")
		return false
	}

	g.Player = target
	g.Moves++

	if g.OnExit() {
		g.Won = true
		g.Log.WithField("moves", g.Moves).Info("exit reached")
	}

	return true
}

// ProcessIntent applies one player intent. Intents other than movement,
// hint and quit are ignored.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.IsOver() {
		return
	}

	if dir, ok := intent.Action.Direction(); ok {
		Move(g, dir)
		return
	}

	switch intent.Action {
	case engineinput.ActionHint:
		showHint(g)
	case engineinput.ActionQuit:
		g.Quit = true
		g.Log.WithField("moves", g.Moves).Info("session quit")
	}
}

// showHint logs the direction of the next step on a shortest route to the exit
func showHint(g *state.Game) {
	path, ok := setup.ShortestPath(g.Grid, g.Player)
	if !ok || len(path) < 2 {
		logMessage(g, locale.Get("MAZE_NO_HINT"))
		return
	}

	dir, _ := world.DirectionBetween(path[0], path[1])
	logMessage(g, locale.Get("MAZE_HINT", "ACTION{"+directionName(dir)+"}"))
}

// directionName returns the translated name of a direction
func directionName(dir world.Direction) string {
	switch dir {
	case world.North:
		return locale.Get("DIR_NORTH")
	case world.South:
		return locale.Get("DIR_SOUTH")
	case world.East:
		return locale.Get("DIR_EAST")
	default:
		return locale.Get("DIR_WEST")
	}
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
