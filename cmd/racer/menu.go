package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
	"github.com/vovakirdan/road-racer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a track picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a track.
Quitting a race returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select track
  Tab          - High scores
  Q            - Quit

Examples:
  racer menu
  racer menu --fps 30
  racer menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := prepareGames(); err != nil {
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

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			cliLog.Error("cannot create game", "error", err)
			continue
		}

		// Fresh traffic for every race unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.Options{Audio: audio, Logger: logger}); err != nil {
			cliLog.Error("error running game", "error", err)
		}
		audio.StopMusic()
	}
}
