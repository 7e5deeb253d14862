// Package lightsout implements the Lights Out grid: a board of lit and unlit
// cells, a cursor, and the 3x3 neighborhood toggle. It has no terminal
// dependencies; the platform layer feeds it actions and draws it.
package lightsout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/heck/internal/core"
)

// ErrInvalidDimensions is returned by New when width or height is below 1.
var ErrInvalidDimensions = errors.New("lightsout: invalid board dimensions")

// Direction is a cursor movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Source is the random stream used to scramble a board.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Board is the puzzle state: cells[row][column], true meaning lit.
type Board struct {
	width   int
	height  int
	cells   [][]bool
	cursorX int
	cursorY int
}

// New creates a width x height board with every cell unlit and the cursor
// at (width/2, height/2).
func New(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
	b.cursorX, b.cursorY = b.Bounds().Center()
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Bounds returns the board area anchored at the origin.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

// Cursor returns the cursor column and row.
func (b *Board) Cursor() (x, y int) {
	return b.cursorX, b.cursorY
}

// SetCursor moves the cursor to (x, y), clamped into the board.
func (b *Board) SetCursor(x, y int) {
	b.cursorX = core.Clamp(x, 0, b.width-1)
	b.cursorY = core.Clamp(y, 0, b.height-1)
}

// MoveCursor moves the cursor one cell, saturating at the edges.
func (b *Board) MoveCursor(d Direction) {
	switch d {
	case DirUp:
		b.cursorY = core.Max(0, b.cursorY-1)
	case DirDown:
		b.cursorY = core.Min(b.height-1, b.cursorY+1)
	case DirLeft:
		b.cursorX = core.Max(0, b.cursorX-1)
	case DirRight:
		b.cursorX = core.Min(b.width-1, b.cursorX+1)
	}
}

// Lit reports whether the cell at (x, y) is lit.
// Positions outside the board are unlit.
func (b *Board) Lit(x, y int) bool {
	if !b.Bounds().Contains(x, y) {
		return false
	}
	return b.cells[y][x]
}

// FlipAt toggles every cell within Chebyshev distance 1 of (x, y), clipped
// to the board. An origin outside the board is a no-op.
func (b *Board) FlipAt(x, y int) {
	bounds := b.Bounds()
	if !bounds.Contains(x, y) {
		return
	}

	area := bounds.Intersect(core.NewRect(x-1, y-1, 3, 3))
	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			b.cells[row][col] = !b.cells[row][col]
		}
	}
}

// Toggle flips the neighborhood under the cursor.
func (b *Board) Toggle() {
	b.FlipAt(b.cursorX, b.cursorY)
}

// RandomFlips applies n flips at uniformly drawn positions.
// Each flip draws the column first, then the row.
func (b *Board) RandomFlips(n int, rng Source) {
	for i := 0; i < n; i++ {
		x := rng.Intn(b.width)
		y := rng.Intn(b.height)
		b.FlipAt(x, y)
	}
}

// IsCleared reports whether every cell is unlit.
func (b *Board) IsCleared() bool {
	for _, row := range b.cells {
		for _, lit := range row {
			if lit {
				return false
			}
		}
	}
	return true
}

// LitCount returns the number of lit cells.
func (b *Board) LitCount() int {
	n := 0
	for _, row := range b.cells {
		for _, lit := range row {
			if lit {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]bool, b.height)
	for y := range cells {
		cells[y] = append([]bool(nil), b.cells[y]...)
	}
	return &Board{
		width:   b.width,
		height:  b.height,
		cells:   cells,
		cursorX: b.cursorX,
		cursorY: b.cursorY,
	}
}

// Equal reports whether two boards have the same cells.
// Cursor position is ignored.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
