package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [track]",
	Short: "Show high scores for a track",
	Long: `Display the top 10 runs for the specified track.

With --run, shows the details of a single run instead, looked up by the
run ID printed in the debug log.

Examples:
  racer scores racer
  racer scores racer_traffic --recent
  racer scores racer_potholes --clear
  racer scores --run 3f1c2a9e-5d7b-4c1e-9a0f-2b8d6e4c7a10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the track")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagRunID == "" && len(args) == 0 {
		return errors.New("missing track, run 'racer list' to see available tracks")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagRunID != "" {
		return printRun(out, store, flagRunID)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown track %q, run 'racer list' to see available tracks", gameID)
	}
	if flagClear {
		return clearScores(out, store, gameID)
	}
	return printScores(out, store, gameID, flagRecent)
}

// printScores writes the best or most recent runs of a track.
func printScores(w io.Writer, store *storage.Store, gameID string, recent bool) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var runs []storage.Run
	heading := "High Scores"
	if recent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, 10)
	} else {
		runs, err = store.TopRuns(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "%s - %s\n\n", heading, game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(w, "No races recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'racer play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-7s  %-6s  %-9s  %-7s  %s\n", "Rank", "Score", "Health", "End", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-6s  %-9s  %-7s  %s\n", "----", "-----", "------", "---", "----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-7d  %-6d  %-9s  %-7s  %s\n",
			i+1, r.Score, r.HealthLeft, r.EndReason,
			r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Races: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printRun writes every recorded field of one run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	run, err := store.RunByID(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("no run with ID %q", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s\n\n", run.ID)
	fmt.Fprintf(w, "  Track:    %s\n", run.GameID)
	fmt.Fprintf(w, "  Score:    %d\n", run.Score)
	fmt.Fprintf(w, "  Health:   %d\n", run.HealthLeft)
	fmt.Fprintf(w, "  End:      %s\n", run.EndReason)
	fmt.Fprintf(w, "  Time:     %s\n", run.Duration.Round(100*time.Millisecond))
	fmt.Fprintf(w, "  Seed:     %d\n", run.Seed)
	if run.SessionID != "" {
		fmt.Fprintf(w, "  Session:  %s\n", run.SessionID)
	}
	fmt.Fprintf(w, "  Date:     %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// clearScores deletes every run of a track and reports how many were removed.
func clearScores(w io.Writer, store *storage.Store, gameID string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs of %s.\n", stats.GamesCount, gameID)
	return nil
}
