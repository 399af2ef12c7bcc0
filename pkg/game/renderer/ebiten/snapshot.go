package ebiten

import (
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// renderSnapshot is an immutable copy of what Draw needs
type renderSnapshot struct {
	valid    bool
	frame    [][]rune
	status   string
	messages []string
	banner   string
	over     bool
	finished bool
}

// capture copies the parts of g that are drawn
func capture(g *state.Game) renderSnapshot {
	if g == nil || g.Grid == nil {
		return renderSnapshot{}
	}

	lines := renderer.Frame(g.Grid, g.Player)
	frame := make([][]rune, len(lines))
	for i, line := range lines {
		frame[i] = []rune(line)
	}

	messages := make([]string, len(g.Messages))
	for i, msg := range g.Messages {
		messages[i] = renderer.PlainText(msg)
	}

	return renderSnapshot{
		valid:    true,
		frame:    frame,
		status:   locale.Get("MAZE_STATUS", g.Moves, g.Bumps, g.Attempts, g.Seed),
		messages: messages,
		over:     g.IsOver(),
	}
}

// current returns a copy of the latest snapshot
func (e *EbitenRenderer) current() renderSnapshot {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	return e.snapshot
}
