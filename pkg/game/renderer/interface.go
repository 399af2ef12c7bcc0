package renderer

import (
	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleStart
	StyleExit
	StylePlayer
	StyleAction
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for game rendering backends
// Implementations include the terminal (TUI) and Ebiten window backends.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: status, maze and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player supplies an intent
	GetInput() input.Intent

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
