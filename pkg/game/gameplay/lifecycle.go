package gameplay

import (
	"strings"

	"github.com/sirupsen/logrus"

	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Welcome seeds the message log for a new session
func Welcome(g *state.Game) {
	g.ClearMessages()
	logMessage(g, locale.Get("MAZE_WELCOME"))
	logMessage(g, locale.Get("MAZE_CONTROLS", keyList(engineinput.ActionHint), keyList(engineinput.ActionQuit)))
}

// keyList names the keys bound to an action, e.g. "ctrl_c/escape/q"
func keyList(action engineinput.Action) string {
	return strings.Join(engineinput.BoundCodes(action), "/")
}

// Run drives an interactive session: render, wait for one intent, apply it,
// until the player reaches the exit or quits. There is no timeout on input.
func Run(g *state.Game, r renderer.Renderer) {
	g.Log.WithField("attempts", g.Attempts).Info("session started")

	for !g.IsOver() {
		r.Clear()
		r.RenderFrame(g)
		ProcessIntent(g, r.GetInput())
	}

	if g.Won {
		logMessage(g, locale.Get("MAZE_WON"))
	} else {
		logMessage(g, locale.Get("MAZE_QUIT"))
	}

	r.Clear()
	r.RenderFrame(g)
	r.ShowMessage(g.Messages[len(g.Messages)-1])

	g.Log.WithFields(logrus.Fields{
		"won":   g.Won,
		"moves": g.Moves,
		"bumps": g.Bumps,
	}).Info("session finished")
}
