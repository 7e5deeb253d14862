package core

// RuntimeConfig contains the parameters a session is started with.
type RuntimeConfig struct {
	Width  int   // Board width in cells
	Height int   // Board height in cells
	Flips  int   // Random flips applied when seeding the board
	Seed   int64 // RNG seed, 0 means use current time in platform layer
}

// Default board parameters.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
	DefaultFlips  = 10
)

// DefaultConfig returns a RuntimeConfig with the stock 10x10 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Flips:  DefaultFlips,
		Seed:   0,
	}
}

// Outcome is the state of the event loop.
// Running is the only non-terminal state; there is no pause.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeQuit
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Done reports whether the loop has reached a terminal state.
func (o Outcome) Done() bool {
	return o == OutcomeWon || o == OutcomeQuit
}
