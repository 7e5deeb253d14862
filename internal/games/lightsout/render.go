package lightsout

import "github.com/vovakirdan/heck/internal/core"

// Glyphs used to draw the board.
const (
	GlyphCell   = '█' // U+2588 full block
	GlyphCursor = '░' // U+2591 light shade
)

// CellStyle returns the screen cell for a board position.
// The cursor keeps the color of the cell underneath it.
func CellStyle(lit, cursor bool) core.Cell {
	c := core.Cell{Rune: GlyphCell, Color: core.ColorDarkGray}
	if cursor {
		c.Rune = GlyphCursor
	}
	if lit {
		c.Color = core.ColorBrightYellow
		c.Bold = true
	}
	return c
}

// Render draws the board into dst starting at the origin, one cell per
// column. Every board cell is written so frames can overdraw each other.
func Render(b *Board, dst *core.Screen) {
	cx, cy := b.Cursor()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			dst.SetCell(x, y, CellStyle(b.cells[y][x], x == cx && y == cy))
		}
	}
}
