// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
//
// Ebiten owns the main goroutine while its window is open, so the session
// loop runs on a goroutine of its own. The session is the only writer of game
// state; it hands the window a snapshot on every RenderFrame and receives
// intents over a buffered channel.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/state"
)

const (
	defaultTileSize = 14
	inputBuffer     = 16
)

// EbitenRenderer draws the maze in a window and reads keyboard input from it
type EbitenRenderer struct {
	tileSize int
	rows     int
	cols     int

	inputChan chan engineinput.Intent
	done      chan struct{}
	closeOnce sync.Once

	snapshotMutex sync.Mutex
	snapshot      renderSnapshot
}

// New creates a renderer sized for a rows x cols maze
func New(rows, cols int) *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:  defaultTileSize,
		rows:      rows,
		cols:      cols,
		inputChan: make(chan engineinput.Intent, inputBuffer),
		done:      make(chan struct{}),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	w, h := e.screenSize()
	ebiten.SetWindowTitle(locale.Get("MAZE_TITLE"))
	ebiten.SetWindowSize(w, h)
}

// Clear is a no-op; every Draw repaints the whole screen
func (e *EbitenRenderer) Clear() {}

// RenderFrame captures the state the next Draw call will show
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := capture(g)

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	snap.banner = e.snapshot.banner
	e.snapshot = snap
}

// ShowMessage shows msg in a banner under the maze
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.banner = msg
}

// GetInput blocks until a key press arrives from the window.
// Once the window has closed it returns Quit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// Run opens the window and runs play on its own goroutine. It returns once
// the window has closed and play has returned.
func (e *EbitenRenderer) Run(play func()) error {
	played := make(chan struct{})
	go func() {
		defer close(played)
		play()
		e.snapshotMutex.Lock()
		e.snapshot.finished = true
		e.snapshotMutex.Unlock()
	}()

	err := ebiten.RunGame(e)
	e.close()
	<-played
	return err
}

func (e *EbitenRenderer) close() {
	e.closeOnce.Do(func() { close(e.done) })
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenSize()
}
