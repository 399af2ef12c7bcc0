// Package renderer defines the rendering contract and the backend-neutral
// pieces every backend draws from: the character frame and message markup.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/locale"
)

// markup matches FUNCTION{operand} spans in messages, e.g. GT{MAZE_WON} or ACTION{q}
var markup = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// Frame returns the maze as text, one string per row, with the player
// glyph drawn over the cell the player stands on
func Frame(grid *world.Grid, player world.Point) []string {
	lines := make([]string, 0, grid.Rows())
	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		sb.Reset()
		for col := 0; col < grid.Cols(); col++ {
			if row == player.Row && col == player.Col {
				sb.WriteRune(world.GlyphPlayer)
				continue
			}
			sb.WriteRune(grid.Get(row, col).Glyph())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// ApplyMarkup formats msg and replaces each FUNCTION{operand} span with
// style(function, operand). GT{} operands are translated before styling.
func ApplyMarkup(style func(function, operand string) string, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return markup.ReplaceAllStringFunc(ret, func(span string) string {
		match := markup.FindStringSubmatch(span)
		function, operand := match[1], match[2]
		if function == "GT" {
			operand = locale.Get(operand)
		}
		return style(function, operand)
	})
}

// PlainText strips markup, for backends that draw text without styling
func PlainText(msg string, args ...any) string {
	return ApplyMarkup(func(_, operand string) string { return operand }, msg, args...)
}
