package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/heck/internal/core"
)

var (
	// ErrNotATerminal is returned when stdin or stdout is not a terminal.
	ErrNotATerminal = errors.New("not a terminal")

	// ErrTerminalTooSmall is returned when the visible area cannot hold the board.
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// TerminalSetupError reports a failure to acquire the terminal.
// The event loop is never entered when it is returned.
type TerminalSetupError struct {
	Op  string
	Err error
}

func (e *TerminalSetupError) Error() string {
	return fmt.Sprintf("tui: %s: %v", e.Op, e.Err)
}

func (e *TerminalSetupError) Unwrap() error {
	return e.Err
}

// Preflight verifies that the process runs on a terminal large enough for
// the board before any terminal state is changed.
func Preflight(in, out *os.File, cfg core.RuntimeConfig) error {
	for _, f := range []*os.File{in, out} {
		if !term.IsTerminal(int(f.Fd())) {
			return &TerminalSetupError{Op: "open " + f.Name(), Err: ErrNotATerminal}
		}
	}

	cols, rows, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return &TerminalSetupError{Op: "get size", Err: err}
	}
	return CheckSize(cols, rows, cfg)
}

// CheckSize requires at least Width columns and Height+1 rows.
func CheckSize(cols, rows int, cfg core.RuntimeConfig) error {
	if cols < cfg.Width || rows < cfg.Height+1 {
		return &TerminalSetupError{
			Op: "check size",
			Err: fmt.Errorf("%w: need %dx%d, have %dx%d",
				ErrTerminalTooSmall, cfg.Width, cfg.Height+1, cols, rows),
		}
	}
	return nil
}
