// Package tui provides the Bubble Tea integration for the game.
// It owns the terminal session, maps input to board operations and paints
// the board after every event.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heck/internal/core"
	"github.com/vovakirdan/heck/internal/games/lightsout"
)

// WindowTitle is set when the session starts.
const WindowTitle = "Heck"

// WinMessage is printed once the terminal has been restored after a win.
const WinMessage = "Congratulations, you win!"

// Model is the Bubble Tea model running one game session.
type Model struct {
	board   *lightsout.Board
	screen  *core.Screen
	keys    KeyMap
	config  core.RuntimeConfig
	logger  *log.Logger
	outcome core.Outcome

	// started is set by Init; shared by every copy of the model.
	started *bool
}

// NewModel creates a model with an unlit board of the configured size.
// The board is scrambled in Init.
func NewModel(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) (Model, error) {
	board, err := lightsout.New(cfg.Width, cfg.Height)
	if err != nil {
		return Model{}, err
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		board:   board,
		screen:  core.NewScreen(cfg.Width, cfg.Height),
		keys:    keys,
		config:  cfg,
		logger:  logger,
		started: new(bool),
	}, nil
}

// Board returns the board driven by the model.
func (m Model) Board() *lightsout.Board {
	return m.board
}

// Outcome returns the loop state.
func (m Model) Outcome() core.Outcome {
	return m.outcome
}

// Init scrambles the board once the program owns the terminal.
func (m Model) Init() tea.Cmd {
	*m.started = true
	m.board.RandomFlips(m.config.Flips, rand.New(rand.NewSource(m.config.Seed)))
	m.logger.Info("session started",
		"width", m.config.Width,
		"height", m.config.Height,
		"flips", m.config.Flips,
		"seed", m.config.Seed,
		"lit", m.board.LitCount())

	return tea.Batch(tea.SetWindowTitle(WindowTitle), tea.ClearScreen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.outcome.Done() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.outcome = core.OutcomeQuit
		m.logger.Info("session ended", "outcome", m.outcome, "lit", m.board.LitCount())
		return m, tea.Quit
	}

	m.apply(action)
	return m.checkWin()
}

// handleMouse processes mouse input. Only a left-button press does anything.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.board.SetCursor(msg.X, msg.Y)
		m.board.Toggle()

		x, y := m.board.Cursor()
		m.logger.Debug("click", "column", msg.X, "row", msg.Y, "cursor_x", x, "cursor_y", y)
	}
	return m.checkWin()
}

// apply performs a non-quit action on the board.
func (m Model) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		m.board.MoveCursor(lightsout.DirLeft)
	case core.ActionDown:
		m.board.MoveCursor(lightsout.DirDown)
	case core.ActionUp:
		m.board.MoveCursor(lightsout.DirUp)
	case core.ActionRight:
		m.board.MoveCursor(lightsout.DirRight)
	case core.ActionToggle:
		m.board.Toggle()
	default:
		return
	}

	x, y := m.board.Cursor()
	m.logger.Debug("action", "action", action, "cursor_x", x, "cursor_y", y)
}

// checkWin ends the session once every light is off.
func (m Model) checkWin() (tea.Model, tea.Cmd) {
	if !m.board.IsCleared() {
		return m, nil
	}

	m.outcome = core.OutcomeWon
	m.logger.Info("session ended", "outcome", m.outcome)
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.outcome.Done() {
		return ""
	}

	lightsout.Render(m.board, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player wins or quits.
// The terminal is restored before Run returns, on every path.
func Run(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger, opts ...tea.ProgramOption) (core.Outcome, error) {
	model, err := NewModel(cfg, keys, logger)
	if err != nil {
		return core.OutcomeRunning, err
	}

	options := []tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press events in SGR encoding
	}
	options = append(options, opts...)

	p := tea.NewProgram(model, options...)

	final, err := p.Run()
	if err != nil {
		model.logger.Error("event loop failed", "error", err, "started", *model.started)
		return core.OutcomeRunning, runError(err, *model.started)
	}

	m, ok := final.(Model)
	if !ok {
		return core.OutcomeRunning, fmt.Errorf("tui: unexpected model type %T", final)
	}
	return m.Outcome(), nil
}

// runError classifies a program failure. Errors raised before Init mean the
// terminal was never acquired.
func runError(err error, started bool) error {
	if !started {
		return &TerminalSetupError{Op: "start", Err: err}
	}
	return fmt.Errorf("tui: event loop: %w", err)
}
