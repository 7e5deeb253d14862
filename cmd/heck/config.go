package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would start with, as YAML.

The output can be saved to ~/.heck/config.yaml and edited.

Examples:
  heck config
  heck config --difficulty hard > ~/.heck/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
