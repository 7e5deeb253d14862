// heck is a Lights Out puzzle for the terminal.
//
// Usage:
//
//	heck             - Play with the default 10x10 board
//	heck keys        - List key bindings
//	heck config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Path to a YAML config (default: ~/.heck/config.yaml, ./configs/heck.yaml)
//	--width, --height    - Board size (default: 10x10)
//	--flips <n>          - Random toggles applied at startup (default: 10)
//	--difficulty <name>  - Scramble preset: easy, normal, hard
//	--seed <value>       - RNG seed for a reproducible board
//	--log <path>         - Write a debug log to this file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heck/internal/config"
	"github.com/vovakirdan/heck/internal/core"
	"github.com/vovakirdan/heck/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagWidth      int
	flagHeight     int
	flagFlips      int
	flagSeed       int64
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heck",
	Short: "Heck - turn off all the lights",
	Long: `Heck is a Lights Out puzzle played in the terminal.

Toggling a cell flips it and its eight neighbors. Turn every light off to win.

Controls:
  h/j/k/l  - Move cursor left/down/up/right
  Space    - Toggle around the cursor
  Click    - Move cursor and toggle
  q        - Quit

Examples:
  heck
  heck --difficulty hard
  heck --width 7 --height 5 --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", core.DefaultWidth, "Board width in cells")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", core.DefaultHeight, "Board height in cells")
	rootCmd.PersistentFlags().IntVar(&flagFlips, "flips", core.DefaultFlips, "Random toggles applied at startup")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Scramble preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rt := cfg.Runtime()

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.Preflight(os.Stdin, os.Stdout, rt); err != nil {
		return err
	}

	outcome, err := tui.Run(rt, tui.NewKeyMap(cfg.Keys), logger)
	if err != nil {
		return err
	}

	// The terminal is back in normal mode here
	if outcome == core.OutcomeWon {
		fmt.Println(tui.WinMessage)
	}
	return nil
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("flips") {
		cfg.Scramble.Flips = flagFlips
		cfg.Scramble.Difficulty = ""
	}
	if flags.Changed("difficulty") {
		cfg.Scramble.Difficulty = config.DifficultyPreset(flagDifficulty)
	}
	if flags.Changed("seed") {
		cfg.Scramble.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a file logger, or a discarding one when path is empty.
// The terminal belongs to the game while it runs, so nothing is logged to it.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "heck",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
