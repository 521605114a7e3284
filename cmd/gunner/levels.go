package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [index]",
	Short: "Print level geometry",
	Long: `Print the platforms of a level, or of levels 1 to 4 when no index is given.
Levels above 3 share the arena layout. Coordinates are platform centers in
world units; y grows upward.

Examples:
  gunner levels
  gunner levels 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	indices := []int{1, 2, 3, 4}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("gunner: levels: bad index %q", args[0])
		}
		indices = []int{n}
	}

	cfg, err := config.LoadGunner(flagConfig)
	if err != nil {
		return fmt.Errorf("gunner: levels: %w", err)
	}

	for i, index := range indices {
		if i > 0 {
			fmt.Println()
		}
		printLevel(gunner.GenerateLevel(index), cfg.Progression)
	}
	return nil
}

func printLevel(lvl gunner.Level, prog config.ProgressionConfig) {
	minX, maxX := lvl.Bounds()
	boss := "no"
	if prog.IsBossLevel(lvl.Index) {
		boss = "yes"
	}
	fmt.Printf("Level %d - %s\n", lvl.Index, gunner.LayoutName(lvl.Index))
	fmt.Printf("quota %d kills, boss %s, spans x %.1f..%.1f\n",
		prog.RequiredKills(lvl.Index), boss, minX, maxX)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableStyle).
		Headers("#", "Surface", "X", "Y", "W", "H", "Top")
	for i, p := range lvl.Platforms {
		t.Row(
			strconv.Itoa(i),
			string(p.Surface),
			num(p.X), num(p.Y), num(p.W), num(p.H), num(p.Top()),
		)
	}
	fmt.Println(t)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
