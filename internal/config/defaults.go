package config

import (
	_ "embed"

	"github.com/vovakirdan/heck/internal/core"
)

//go:embed defaults/heck.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  core.DefaultWidth,
			Height: core.DefaultHeight,
		},
		Scramble: ScrambleConfig{
			Flips: core.DefaultFlips,
			Seed:  0,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the vi-style bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Left:   []string{"h"},
		Down:   []string{"j"},
		Up:     []string{"k"},
		Right:  []string{"l"},
		Toggle: []string{" "},
		Quit:   []string{"q"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
