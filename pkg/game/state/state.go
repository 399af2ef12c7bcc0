package state

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mazerunner/pkg/engine/world"
)

// maxMessages is how many log lines the session keeps for display
const maxMessages = 5

// Game represents the state of one interactive maze session
type Game struct {
	ID uuid.UUID

	Grid *world.Grid

	Player world.Point

	Won  bool
	Quit bool

	Moves    int // Accepted moves
	Bumps    int // Moves rejected by a wall or the border
	Attempts int // Grids generated before one was accepted
	Seed     uint64

	Messages []string

	Log logrus.FieldLogger
}

// NewGame creates a new session on the given grid with the player on start
func NewGame(grid *world.Grid, start world.Point) *Game {
	id := uuid.New()

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &Game{
		ID:       id,
		Grid:     grid,
		Player:   start,
		Messages: make([]string, 0),
		Log:      discard.WithField("session", id.String()),
	}
}

// SetLogger attaches a logger, tagging every entry with the session id
func (g *Game) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		return
	}
	g.Log = l.WithField("session", g.ID.String())
}

// IsOver returns true once the player has won or quit
func (g *Game) IsOver() bool {
	return g.Won || g.Quit
}

// OnExit returns true if the player stands on the exit
func (g *Game) OnExit() bool {
	return g.Grid != nil && g.Grid.At(g.Player) == world.Exit
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
