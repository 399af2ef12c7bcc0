package input

import (
	"sort"
	"strings"
	"time"

	"mazerunner/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta
	ActionHint
	ActionQuit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionMoveNorth:
		return "MoveNorth"
	case ActionMoveSouth:
		return "MoveSouth"
	case ActionMoveWest:
		return "MoveWest"
	case ActionMoveEast:
		return "MoveEast"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "k").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Turn-based play needs no key-repeat suppression, so this is a thin copy
// that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim, WASD)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,
	"d":           ActionMoveEast,

	// Help / hint
	"?": ActionHint,

	// Quit
	"q":      ActionQuit,
	"ctrl_c": ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent resolves a debounced input to an intent. Unbound codes map to ActionNone.
func MapToIntent(in DebouncedInput) Intent {
	return Intent{Action: bindings[in.Code]}
}

// IntentFromCode runs a raw code from device through every layer
func IntentFromCode(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// BoundCodes returns the sorted codes bound to an action, for help text
func BoundCodes(action Action) []string {
	var codes []string
	for code, a := range bindings {
		if a == action {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Direction returns the movement direction of a move action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	default:
		return world.North, false
	}
}
