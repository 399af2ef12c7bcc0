package state

import (
	"fmt"
	"testing"

	"mazerunner/pkg/engine/world"
)

func TestNewGame_StartsPlaying(t *testing.T) {
	grid := world.NewGrid(3, 3)
	g := NewGame(grid, world.Point{Row: 1, Col: 1})
	if g.IsOver() {
		t.Error("new game IsOver() = true, want false")
	}
	if g.Player != (world.Point{Row: 1, Col: 1}) {
		t.Errorf("Player = %v, want 1:1", g.Player)
	}
	if g.Log == nil {
		t.Error("Log is nil, want a discarding logger")
	}
	if NewGame(grid, g.Player).ID == g.ID {
		t.Error("two sessions share an ID")
	}
}

func TestOnExit(t *testing.T) {
	grid := world.NewGrid(3, 4)
	grid.Set(1, 1, world.Open)
	grid.Set(1, 2, world.Exit)
	g := NewGame(grid, world.Point{Row: 1, Col: 1})
	if g.OnExit() {
		t.Error("OnExit() = true on an open cell")
	}
	g.Player = world.Point{Row: 1, Col: 2}
	if !g.OnExit() {
		t.Error("OnExit() = false on the exit")
	}
}

func TestAddMessage_KeepsLastMessages(t *testing.T) {
	g := NewGame(world.NewGrid(3, 3), world.Point{Row: 1, Col: 1})
	for i := 0; i < maxMessages+3; i++ {
		g.AddMessage(fmt.Sprintf("msg %d", i))
	}
	if len(g.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), maxMessages)
	}
	if g.Messages[0] != "msg 3" || g.Messages[maxMessages-1] != fmt.Sprintf("msg %d", maxMessages+2) {
		t.Errorf("Messages = %v, want the newest %d", g.Messages, maxMessages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("after ClearMessages len = %d", len(g.Messages))
	}
}
