// Package tui draws the maze on an ANSI terminal and reads keys from it.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// chromeRows is the number of lines drawn around the maze: status line and
// blank, messages pane (header, five lines, footer) and the prompt
const chromeRows = 11

// KeySource yields one normalised key code per call, see input.KeyReader
type KeySource interface {
	ReadKey() (string, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	keys KeySource
	size func() (width, height int)
	log  logrus.FieldLogger

	colorWall   color.Style
	colorStart  color.Style
	colorExit   color.Style
	colorPlayer color.Style
	colorAction color.Style
	colorSubtle color.Style
	colorDenied color.Style
}

// New creates a new TUI renderer writing to out and reading keys from keys
func New(out io.Writer, keys KeySource) *TUIRenderer {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &TUIRenderer{
		out:  out,
		keys: keys,
		size: terminal.GetSize,
		log:  discard,
	}
}

// SetLogger replaces the logger used to report input failures
func (t *TUIRenderer) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		t.log = l
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorStart = color.Style{color.FgCyan, color.OpBold}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Clear moves the cursor home and clears the screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// GetInput blocks for one key press. A read error ends the session.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := t.keys.ReadKey()
	if err != nil {
		t.log.WithError(err).Warn("reading key failed, quitting")
		return input.Intent{Action: input.ActionQuit}
	}

	return input.IntentFromCode(input.DeviceTerminal, code)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(func(function, operand string) string {
		switch function {
		case "ACTION":
			return t.StyleText(operand, renderer.StyleAction)
		case "DENIED":
			return t.StyleText(operand, renderer.StyleDenied)
		default:
			return operand
		}
	}, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// RenderFrame renders the status line, the maze and the messages pane
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	width, height := t.size()

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(locale.Get("MAZE_STATUS", g.Moves, g.Bumps, g.Attempts, g.Seed)))
	fmt.Fprintln(t.out)

	if g.Grid != nil {
		need := g.Grid.Rows() + chromeRows
		if !terminal.Fits(need, g.Grid.Cols(), width, height) {
			fmt.Fprintln(t.out, t.StyleText(locale.Get("MAZE_TERMINAL_TOO_SMALL", width, height, g.Grid.Cols(), need), renderer.StyleDenied))
		}
		t.printMaze(g)
	}

	t.printMessagesPane(g, width)

	if !g.IsOver() {
		fmt.Fprint(t.out, "> ")
	}
}

// printMaze writes the grid row by row, coloring each glyph
func (t *TUIRenderer) printMaze(g *state.Game) {
	for row, line := range renderer.Frame(g.Grid, g.Player) {
		var sb strings.Builder
		for col, r := range []rune(line) {
			sb.WriteString(t.renderCell(g, world.Point{Row: row, Col: col}, r))
		}
		fmt.Fprintln(t.out, sb.String())
	}
}

func (t *TUIRenderer) renderCell(g *state.Game, p world.Point, glyph rune) string {
	s := string(glyph)
	if p == g.Player {
		return t.StyleText(s, renderer.StylePlayer)
	}

	switch g.Grid.At(p) {
	case world.Wall:
		return t.StyleText(s, renderer.StyleWall)
	case world.Start:
		return t.StyleText(s, renderer.StyleStart)
	case world.Exit:
		return t.StyleText(s, renderer.StyleExit)
	default:
		return s
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game, width int) {
	label := " " + locale.Get("MAZE_MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+locale.Get("MAZE_NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
}
