package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-gunner/internal/registry"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant with its best score, when a scores database is available.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d (%d played)", s.HighScore, s.GamesCount)
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'gunner play <id>' to play a variant.")
}
