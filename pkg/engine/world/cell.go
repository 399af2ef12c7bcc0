// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Symbol is the content of a single grid cell.
type Symbol byte

// Cell symbols. The player marker is a render overlay and is never stored in a grid.
const (
	Wall Symbol = iota
	Open
	Start
	Exit
)

// Glyphs used for plain-text dumps of a grid
const (
	GlyphWall   = '█'
	GlyphOpen   = ' '
	GlyphStart  = 'S'
	GlyphExit   = 'E'
	GlyphPlayer = 'P'
)

// String returns the name of the symbol
func (s Symbol) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Glyph returns the character used to draw the symbol
func (s Symbol) Glyph() rune {
	switch s {
	case Open:
		return GlyphOpen
	case Start:
		return GlyphStart
	case Exit:
		return GlyphExit
	default:
		return GlyphWall
	}
}

// IsWalkable returns true for every symbol except Wall
func (s Symbol) IsWalkable() bool {
	return s != Wall
}

// SymbolFromGlyph maps a glyph back to a symbol. Both the block character
// and '#' are accepted for walls, and both ' ' and '.' for open cells.
func SymbolFromGlyph(r rune) (Symbol, bool) {
	switch r {
	case GlyphWall, '#':
		return Wall, true
	case GlyphOpen, '.':
		return Open, true
	case GlyphStart:
		return Start, true
	case GlyphExit:
		return Exit, true
	default:
		return Wall, false
	}
}
