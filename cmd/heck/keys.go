package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heck/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows the key bindings in effect, including overrides from the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	km := tui.NewKeyMap(cfg.Keys)

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, b := range km.ShortHelp() {
		if len(b.Help().Key) > maxKeyLen {
			maxKeyLen = len(b.Help().Key)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "------")

	for _, b := range km.ShortHelp() {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "click", "move cursor and toggle")
	return nil
}
