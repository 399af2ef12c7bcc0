package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerunner/pkg/engine/world"
)

// Layout constants, in pixels. The debug font is 6x16.
const (
	margin     = 8
	lineHeight = 16
	headerRows = 2
	footerRows = 8
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colorWall       = color.RGBA{0x5a, 0x5a, 0x66, 0xff}
	colorStart      = color.RGBA{0x2a, 0x9d, 0xb8, 0xff}
	colorExit       = color.RGBA{0x3c, 0xb3, 0x4a, 0xff}
	colorPlayer     = color.RGBA{0xf2, 0xc1, 0x2e, 0xff}
)

// screenSize returns the logical screen size for the configured maze
func (e *EbitenRenderer) screenSize() (int, int) {
	w := e.cols*e.tileSize + 2*margin
	h := e.rows*e.tileSize + (headerRows+footerRows)*lineHeight + 2*margin
	return max(w, 320), h
}

// glyphColor returns the fill for a frame glyph, false for open floor
func glyphColor(r rune) (color.Color, bool) {
	switch r {
	case world.GlyphWall:
		return colorWall, true
	case world.GlyphStart:
		return colorStart, true
	case world.GlyphExit:
		return colorExit, true
	case world.GlyphPlayer:
		return colorPlayer, true
	default:
		return nil, false
	}
}

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.current()
	if !snap.valid {
		return
	}

	ebitenutil.DebugPrintAt(screen, snap.status, margin, margin)

	mapY := margin + headerRows*lineHeight
	ts := float32(e.tileSize)
	for row, line := range snap.frame {
		for col, r := range line {
			clr, ok := glyphColor(r)
			if !ok {
				continue
			}
			x := float32(margin + col*e.tileSize)
			y := float32(mapY + row*e.tileSize)
			if r == world.GlyphPlayer {
				vector.DrawFilledRect(screen, x+2, y+2, ts-4, ts-4, clr, false)
				continue
			}
			vector.DrawFilledRect(screen, x, y, ts, ts, clr, false)
		}
	}

	y := mapY + len(snap.frame)*e.tileSize + lineHeight/2
	for _, msg := range snap.messages {
		ebitenutil.DebugPrintAt(screen, msg, margin, y)
		y += lineHeight
	}
	if snap.banner != "" && snap.finished {
		ebitenutil.DebugPrintAt(screen, snap.banner, margin, y+lineHeight/2)
	}
}
