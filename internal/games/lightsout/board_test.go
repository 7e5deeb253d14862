package lightsout

import (
	"errors"
	"math/rand"
	"testing"
)

type point struct{ x, y int }

// litCells returns the set of lit positions.
func litCells(b *Board) map[point]bool {
	lit := make(map[point]bool)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Lit(x, y) {
				lit[point{x, y}] = true
			}
		}
	}
	return lit
}

func expectLit(t *testing.T, b *Board, want []point) {
	t.Helper()
	got := litCells(b)
	if len(got) != len(want) {
		t.Errorf("lit cells = %v, want %v", got, want)
		return
	}
	for _, p := range want {
		if !got[p] {
			t.Errorf("cell (%d, %d) should be lit, lit cells = %v", p.x, p.y, got)
		}
	}
}

func newBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return b
}

// sequence is a Source that replays fixed values.
type sequence struct {
	values []int
	pos    int
	bounds []int
}

func (s *sequence) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func TestNew(t *testing.T) {
	tests := []struct {
		w, h   int
		cx, cy int
	}{
		{10, 10, 5, 5},
		{5, 5, 2, 2},
		{1, 1, 0, 0},
		{7, 3, 3, 1},
		{2, 9, 1, 4},
	}

	for _, tc := range tests {
		b := newBoard(t, tc.w, tc.h)
		if b.Width() != tc.w || b.Height() != tc.h {
			t.Errorf("New(%d, %d) dimensions = %dx%d", tc.w, tc.h, b.Width(), b.Height())
		}
		if x, y := b.Cursor(); x != tc.cx || y != tc.cy {
			t.Errorf("New(%d, %d) cursor = (%d, %d), want (%d, %d)", tc.w, tc.h, x, y, tc.cx, tc.cy)
		}
		if !b.IsCleared() || b.LitCount() != 0 {
			t.Errorf("New(%d, %d) should start cleared", tc.w, tc.h)
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		b, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if b != nil {
			t.Errorf("New(%d, %d) should not return a board", dims[0], dims[1])
		}
	}
}

func TestMoveCursorSaturates(t *testing.T) {
	b := newBoard(t, 5, 5)

	for i := 0; i < 4; i++ {
		b.MoveCursor(DirLeft)
	}
	if x, _ := b.Cursor(); x != 0 {
		t.Fatalf("after 4x Left cursor_x = %d, want 0", x)
	}
	b.MoveCursor(DirLeft)
	if x, _ := b.Cursor(); x != 0 {
		t.Errorf("Left at edge moved cursor to %d", x)
	}

	tests := []struct {
		dir    Direction
		startX int
		startY int
		wantX  int
		wantY  int
	}{
		{DirUp, 2, 0, 2, 0},
		{DirDown, 2, 4, 2, 4},
		{DirLeft, 0, 2, 0, 2},
		{DirRight, 4, 2, 4, 2},
		{DirUp, 2, 2, 2, 1},
		{DirDown, 2, 2, 2, 3},
		{DirLeft, 2, 2, 1, 2},
		{DirRight, 2, 2, 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			b.SetCursor(tc.startX, tc.startY)
			b.MoveCursor(tc.dir)
			if x, y := b.Cursor(); x != tc.wantX || y != tc.wantY {
				t.Errorf("MoveCursor(%s) from (%d, %d) = (%d, %d), want (%d, %d)",
					tc.dir, tc.startX, tc.startY, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestMoveCursorRightUsesWidth(t *testing.T) {
	// Wide, short board: clamping against height would stop at column 1.
	b := newBoard(t, 8, 2)
	for i := 0; i < 20; i++ {
		b.MoveCursor(DirRight)
	}
	if x, _ := b.Cursor(); x != 7 {
		t.Errorf("cursor_x = %d, want 7", x)
	}
	for i := 0; i < 20; i++ {
		b.MoveCursor(DirDown)
	}
	if _, y := b.Cursor(); y != 1 {
		t.Errorf("cursor_y = %d, want 1", y)
	}
}

func TestMoveCursorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 10}, {9, 2}} {
		b := newBoard(t, dims[0], dims[1])
		for i := 0; i < 500; i++ {
			b.MoveCursor(dirs[rng.Intn(len(dirs))])
			x, y := b.Cursor()
			if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
				t.Fatalf("%dx%d: cursor escaped to (%d, %d)", dims[0], dims[1], x, y)
			}
		}
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := newBoard(t, 5, 5)

	b.SetCursor(99, 99)
	if x, y := b.Cursor(); x != 4 || y != 4 {
		t.Errorf("SetCursor(99, 99) = (%d, %d), want (4, 4)", x, y)
	}
	b.SetCursor(-3, 2)
	if x, y := b.Cursor(); x != 0 || y != 2 {
		t.Errorf("SetCursor(-3, 2) = (%d, %d), want (0, 2)", x, y)
	}
}

func TestFlipAtInterior(t *testing.T) {
	b := newBoard(t, 5, 5)
	b.FlipAt(2, 2)

	expectLit(t, b, []point{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
	})
	if b.IsCleared() {
		t.Error("IsCleared() should be false after an interior flip")
	}
}

func TestFlipAtClipping(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want []point
	}{
		{"top-left corner", 0, 0, []point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"bottom-right corner", 4, 4, []point{{3, 3}, {4, 3}, {3, 4}, {4, 4}}},
		{"top edge", 2, 0, []point{{1, 0}, {2, 0}, {3, 0}, {1, 1}, {2, 1}, {3, 1}}},
		{"left edge", 0, 3, []point{{0, 2}, {1, 2}, {0, 3}, {1, 3}, {0, 4}, {1, 4}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, 5, 5)
			b.FlipAt(tc.x, tc.y)
			expectLit(t, b, tc.want)
		})
	}
}

func TestFlipAtCornerInvolution(t *testing.T) {
	b := newBoard(t, 5, 5)

	b.FlipAt(0, 0)
	if b.IsCleared() {
		t.Fatal("IsCleared() should be false after first corner flip")
	}
	b.FlipAt(0, 0)
	if !b.IsCleared() {
		t.Errorf("IsCleared() should be true after flipping the corner twice, lit = %v", litCells(b))
	}
}

func TestFlipAtOutsideIsNoop(t *testing.T) {
	b := newBoard(t, 5, 5)
	b.RandomFlips(6, rand.New(rand.NewSource(3)))
	before := b.Clone()

	for _, p := range []point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {99, 99}, {-100, 2}} {
		b.FlipAt(p.x, p.y)
		if !b.Equal(before) {
			t.Fatalf("FlipAt(%d, %d) outside the board changed cells", p.x, p.y)
		}
	}
}

func TestFlipAtTouchesOnlyNeighborhood(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := newBoard(t, 7, 6)
	b.RandomFlips(15, rng)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			before := b.Clone()
			b.FlipAt(x, y)
			for r := 0; r < b.Height(); r++ {
				for c := 0; c < b.Width(); c++ {
					near := c >= x-1 && c <= x+1 && r >= y-1 && r <= y+1
					changed := before.Lit(c, r) != b.Lit(c, r)
					if near != changed {
						t.Fatalf("FlipAt(%d, %d): cell (%d, %d) changed=%v, in neighborhood=%v", x, y, c, r, changed, near)
					}
				}
			}
			b.FlipAt(x, y)
			if !b.Equal(before) {
				t.Fatalf("FlipAt(%d, %d) twice is not the identity", x, y)
			}
		}
	}
}

func TestFlipSequenceReversed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := newBoard(t, 6, 4)
	b.RandomFlips(5, rng)
	start := b.Clone()

	seq := make([]point, 25)
	for i := range seq {
		seq[i] = point{rng.Intn(8) - 1, rng.Intn(6) - 1}
	}
	for _, p := range seq {
		b.FlipAt(p.x, p.y)
	}
	for i := len(seq) - 1; i >= 0; i-- {
		b.FlipAt(seq[i].x, seq[i].y)
	}

	if !b.Equal(start) {
		t.Error("applying a flip sequence and its reverse should restore the board")
	}
}

func TestRandomFlipsReplaysSource(t *testing.T) {
	// Each flip draws the column first, then the row.
	src := &sequence{values: []int{0, 3, 4, 1}}
	b := newBoard(t, 5, 5)
	b.RandomFlips(2, src)

	want := newBoard(t, 5, 5)
	want.FlipAt(0, 3)
	want.FlipAt(4, 1)

	if !b.Equal(want) {
		t.Errorf("RandomFlips lit %v, want %v", litCells(b), litCells(want))
	}
	if src.pos != 4 {
		t.Errorf("RandomFlips(2) drew %d values, want 4", src.pos)
	}

	swapped := newBoard(t, 5, 5)
	swapped.FlipAt(3, 0)
	swapped.FlipAt(1, 4)
	if b.Equal(swapped) {
		t.Error("RandomFlips should draw the column before the row")
	}
}

func TestRandomFlipsNonSquare(t *testing.T) {
	// The column is drawn below width and the row below height.
	src := &sequence{values: []int{7, 1}}
	b := newBoard(t, 8, 2)
	b.RandomFlips(1, src)

	want := newBoard(t, 8, 2)
	want.FlipAt(7, 1)

	if !b.Equal(want) {
		t.Errorf("RandomFlips lit %v, want %v", litCells(b), litCells(want))
	}
	if got := src.bounds; len(got) != 2 || got[0] != 8 || got[1] != 2 {
		t.Errorf("RandomFlips drew with bounds %v, want [8 2]", got)
	}
}

func TestRandomFlipsDeterministic(t *testing.T) {
	a := newBoard(t, 10, 10)
	b := newBoard(t, 10, 10)

	a.RandomFlips(10, rand.New(rand.NewSource(1234)))
	b.RandomFlips(10, rand.New(rand.NewSource(1234)))

	if !a.Equal(b) {
		t.Error("same seed should produce the same board")
	}
}

func TestRandomFlipsZero(t *testing.T) {
	b := newBoard(t, 5, 5)
	b.RandomFlips(0, &sequence{values: []int{1}})
	b.RandomFlips(-2, &sequence{values: []int{1}})
	if !b.IsCleared() {
		t.Error("RandomFlips with n <= 0 should not change the board")
	}
}

func TestWinPath(t *testing.T) {
	b := newBoard(t, 5, 5)

	b.FlipAt(1, 1)
	if b.IsCleared() {
		t.Fatal("board should not be cleared after one flip")
	}
	b.FlipAt(1, 1)
	if !b.IsCleared() {
		t.Error("board should be cleared after flipping the same cell twice")
	}
}

func TestIsClearedMatchesCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := newBoard(t, 4, 4)
	for i := 0; i < 200; i++ {
		b.FlipAt(rng.Intn(4), rng.Intn(4))
		if b.IsCleared() != (b.LitCount() == 0) {
			t.Fatalf("IsCleared() = %v with %d lit cells", b.IsCleared(), b.LitCount())
		}
	}
}

func TestToggleUsesCursor(t *testing.T) {
	b := newBoard(t, 5, 5)
	b.SetCursor(4, 0)
	b.Toggle()
	expectLit(t, b, []point{{3, 0}, {4, 0}, {3, 1}, {4, 1}})
}

func TestCloneIsIndependent(t *testing.T) {
	b := newBoard(t, 3, 3)
	c := b.Clone()
	c.FlipAt(1, 1)

	if !b.IsCleared() {
		t.Error("flipping a clone should not change the original")
	}
	if b.Equal(c) {
		t.Error("Equal() should detect differing cells")
	}
}
