package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-gunner/internal/config"
)

var flagConfigPreset string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables",
	Long: `Print the tunables table as YAML, after the config search order and the
difficulty preset are applied. The output is a valid --config file.

Examples:
  gunner config > my-gunner.yaml
  gunner config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagConfigPreset)
	if err != nil {
		return fmt.Errorf("gunner: config: %w", err)
	}
	cfg, err := config.LoadGunner(flagConfig)
	if err != nil {
		return fmt.Errorf("gunner: config: %w", err)
	}
	config.ApplyGunnerPreset(&cfg, preset)

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("gunner: config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
