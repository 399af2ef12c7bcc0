package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazerunner/pkg/engine/input"
)

// keyCodes maps window keys to the raw codes the terminal produces,
// so both backends share one set of bindings
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// codeIntent runs a window key code through the input layers
func codeIntent(code string) engineinput.Intent {
	return engineinput.IntentFromCode(engineinput.DeviceKeyboard, code)
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	snap := e.current()
	if snap.finished {
		// Leave the final frame up until the player presses a key
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// checkInput returns the intent for the first bound key pressed this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// '?' is Shift+/ on most layouts
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return codeIntent("?")
	}

	for _, kc := range keyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			return codeIntent(kc.code)
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}
