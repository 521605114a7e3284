// gunner is a side-scrolling arcade shooter for the terminal.
//
// Usage:
//
//	gunner play [variant]    - Play in the terminal
//	gunner sim               - Run a headless autopilot session
//	gunner scores [variant]  - Show high scores and recent runs
//	gunner levels [index]    - Print level geometry
//	gunner list              - List game variants
//	gunner serve             - Start SSH server for remote play
//	gunner config            - Print the effective tunables
//
// Global flags:
//
//	--config <path>     - Custom tunables YAML
//	--db <path>         - Scores database (default: ~/.retro-gunner/scores.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--seed <value>      - RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

var (
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gunner",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gunner",
	Short: "Retro Gunner - a side-scrolling shooter in your terminal",
	Long: `Retro Gunner is a platform shooter played in the terminal: clear each
level's kill quota, beat the boss every third level, survive to level 9.

Examples:
  gunner play
  gunner play --difficulty hard --sound
  gunner sim --ticks 20000 --seed 7 --record
  gunner scores
  gunner serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("gunner: log level: %w", err)
	}
	logger.SetLevel(level)

	gunner.SetLogger(logger.WithPrefix("world"))
	gunner.SetConfigPath(flagConfig)
	return nil
}
