package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
	"github.com/vovakirdan/road-racer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <track>",
	Short: "Race on a track",
	Long: `Start racing on the specified track.

Controls:
  Up/W       - Steer up
  Down/S     - Steer down
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.racer/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Scroll speed ramps up from base speed, 5 health
  normal - Starts at 30% of the speed boost, ramps up
  hard   - Starts at 70% of the speed boost, 3 health
  fixed  - No progression, base speeds

Examples:
  racer play racer
  racer play racer_traffic --difficulty hard
  racer play racer_potholes --seed 42 --mute
  racer play racer --config ./my-racer.yaml --log racer.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown track %q, run 'racer list' to see available tracks", gameID)
	}
	if err := prepareGames(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := openDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	audio, closeAudio := openAudio()
	defer closeAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), tui.Options{Audio: audio, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
