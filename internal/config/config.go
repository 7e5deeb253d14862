// Package config provides YAML-based configuration loading for the board,
// the scramble and the key bindings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/heck/internal/core"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all user-tunable settings.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Scramble ScrambleConfig `yaml:"scramble"`
	Keys     KeysConfig     `yaml:"keys"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScrambleConfig defines how the board is seeded at startup.
type ScrambleConfig struct {
	Flips      int              `yaml:"flips"`
	Seed       int64            `yaml:"seed"`                 // 0 = random based on time
	Difficulty DifficultyPreset `yaml:"difficulty,omitempty"` // Overrides flips when set
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key notation.
type KeysConfig struct {
	Left   []string `yaml:"left"`
	Down   []string `yaml:"down"`
	Up     []string `yaml:"up"`
	Right  []string `yaml:"right"`
	Toggle []string `yaml:"toggle"`
	Quit   []string `yaml:"quit"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Scramble.Flips < 0 {
		return fmt.Errorf("%w: flips must not be negative, got %d", ErrInvalidConfig, c.Scramble.Flips)
	}
	if c.Scramble.Difficulty != "" && !c.Scramble.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Scramble.Difficulty)
	}

	bindings := map[string][]string{
		"left":   c.Keys.Left,
		"down":   c.Keys.Down,
		"up":     c.Keys.Up,
		"right":  c.Keys.Right,
		"toggle": c.Keys.Toggle,
		"quit":   c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Runtime converts the configuration into the parameters of a session.
// A difficulty preset takes precedence over the flip count.
func (c Config) Runtime() core.RuntimeConfig {
	flips := c.Scramble.Flips
	if c.Scramble.Difficulty != "" {
		flips = FlipsForPreset(c.Scramble.Difficulty)
	}
	return core.RuntimeConfig{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Flips:  flips,
		Seed:   c.Scramble.Seed,
	}
}
