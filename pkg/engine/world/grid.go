package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrid is returned by ParseGrid for ragged or unreadable input
var ErrMalformedGrid = errors.New("malformed grid")

// Point is a (row, col) grid coordinate
type Point struct {
	Row int
	Col int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	rowDelta, colDelta := dir.Delta()
	return Point{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// String returns the point as "row:col"
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Grid is a fixed-size buffer of cell symbols
type Grid struct {
	cells []Symbol
	rows  int
	cols  int
}

// NewGrid creates a new grid with every cell set to Wall
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.build(rows, cols)
	return g
}

// build sizes the grid, every cell starting as Wall
func (g *Grid) build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	// Wall is the zero Symbol
	g.cells = make([]Symbol, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// Get returns the symbol at the given position, or Wall if out of bounds
func (g *Grid) Get(row, col int) Symbol {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.cells[row*g.cols+col]
}

// At returns the symbol at p
func (g *Grid) At(p Point) Symbol {
	return g.Get(p.Row, p.Col)
}

// Set writes a symbol. Returns false if the position is out of bounds.
func (g *Grid) Set(row, col int, sym Symbol) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = sym
	return true
}

// Fill sets every cell to sym
func (g *Grid) Fill(sym Symbol) {
	for i := range g.cells {
		g.cells[i] = sym
	}
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, sym Symbol)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Count returns how many cells hold sym
func (g *Grid) Count(sym Symbol) int {
	n := 0
	for _, s := range g.cells {
		if s == sym {
			n++
		}
	}
	return n
}

// Find returns the first cell (row-major) holding sym
func (g *Grid) Find(sym Symbol) (Point, bool) {
	for i, s := range g.cells {
		if s == sym {
			return Point{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Symbol, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String dumps the grid using the symbol glyphs, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1) * 3)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.Get(row, col).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from a glyph dump such as the one produced by String.
// Blank leading and trailing lines are ignored.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	cols := len([]rune(lines[0]))
	g := NewGrid(len(lines), cols)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGrid, row, len(runes), cols)
		}
		for col, r := range runes {
			sym, ok := SymbolFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %d:%d", ErrMalformedGrid, r, row, col)
			}
			g.Set(row, col, sym)
		}
	}
	return g, nil
}
