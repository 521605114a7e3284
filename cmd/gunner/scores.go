package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-gunner/internal/platform/tui"
	"github.com/vovakirdan/retro-gunner/internal/registry"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

var (
	flagLimit int
	flagRuns  bool
	flagPlain bool
	flagClear bool
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and recent runs",
	Long: `Browse high scores and recent runs. In a terminal this opens an
interactive table (tab switches variant, r toggles runs); with --plain or
when piped it prints the top scores and exits.

Examples:
  gunner scores
  gunner scores gunner_hard --plain
  gunner scores --runs --plain --limit 20
  gunner scores --plain --all
  gunner scores gunner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Print recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the variant")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Print every score, ignoring --limit")
}

var tableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func runScores(_ *cobra.Command, args []string) error {
	gameID := "gunner"
	if len(args) > 0 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("gunner: scores: %w (run 'gunner list')", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("gunner: scores: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("gunner: scores: %w", err)
		}
		fmt.Printf("Cleared scores and runs of %s.\n", gameID)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	}

	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableStyle)

	if flagRuns {
		runs, err := store.RecentRuns(gameID, flagLimit)
		if err != nil {
			return fmt.Errorf("gunner: scores: %w", err)
		}
		fmt.Printf("Recent Runs - %s\n\n", title)
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}
		t.Headers("Date", "Score", "Level", "Kills", "Outcome", "Source")
		for _, r := range tui.RunRows(runs) {
			t.Row(r...)
		}
	} else {
		scores, err := loadScores(store, gameID, flagAll, flagLimit)
		if err != nil {
			return fmt.Errorf("gunner: scores: %w", err)
		}
		fmt.Printf("High Scores - %s\n\n", title)
		if len(scores) == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			fmt.Printf("Play 'gunner play %s' to set the first high score!\n", gameID)
			return nil
		}
		t.Headers("Rank", "Score", "Date")
		for _, r := range tui.ScoreRows(scores) {
			t.Row(r...)
		}
	}

	fmt.Println(t)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("gunner: scores: %w", err)
	}
	fmt.Println(tui.FormatStats(stats))
	return nil
}

// loadScores returns the best scores of a variant, or all of them.
func loadScores(store *storage.Store, gameID string, all bool, limit int) ([]storage.ScoreEntry, error) {
	if all {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}
