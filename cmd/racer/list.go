package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tracks",
	Long: `Shows every registered track with the traffic it spawns, how many races
were recorded on it and the best score.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	var stats map[string]*storage.GameStats
	if store := openStore(); store != nil {
		defer store.Close()
		var err error
		if stats, err = store.GetAllGamesStats(); err != nil {
			cliLog.Warn("could not load track stats", "error", err)
		}
	}
	printList(cmd.OutOrStdout(), registry.List(), stats)
}

// printList writes the track table. Tracks missing from stats show zeros.
func printList(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No tracks available.")
		return
	}

	fmt.Fprintln(w, "Available tracks:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-14s  %-20s  %5s  %5s\n", maxIDLen, "ID", "Title", "Traffic", "Races", "Best")
	fmt.Fprintf(w, "  %-*s  %-14s  %-20s  %5s  %5s\n", maxIDLen, "--", "-----", "-------", "-----", "----")

	for _, g := range games {
		races, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			races, best = st.GamesCount, st.HighScore
		}
		fmt.Fprintf(w, "  %-*s  %-14s  %-20s  %5d  %5d\n", maxIDLen, g.ID, g.Title, g.Summary, races, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'racer play <id>' to race.")
}
