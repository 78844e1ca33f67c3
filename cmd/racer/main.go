// racer is a top-down endless road race for the terminal.
//
// Usage:
//
//	racer list              - List available tracks
//	racer play <track>      - Race on a track
//	racer menu              - Pick tracks interactively
//	racer serve             - Start SSH server for remote play
//	racer scores <track>    - Show high scores for a track
//	racer config            - Print the racer YAML config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible traffic
//	--db <path>           - Set database path (default: ~/.racer/scores.db)
//	--config <path>       - Load a custom racer YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write a debug log to a file
//	--mute                - Disable music and sound effects
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/road-racer/internal/audio"
	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/racer"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagMute       bool
)

// cliLog reports warnings to the terminal before and after the TUI runs.
var cliLog = log.NewWithOptions(os.Stderr, log.Options{Prefix: "racer"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		cliLog.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Road Racer - dodge traffic in your terminal",
	Long: `Road Racer is a top-down endless racing game for the terminal.

Steer up and down to dodge cars and potholes while the road scrolls by.
Every crash costs one point of health; leaving the road ends the race.

Available commands:
  list     - Show all tracks
  play     - Race on a specific track
  menu     - Interactive track picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the YAML config

Examples:
  racer list
  racer play racer
  racer play racer_traffic --difficulty hard
  racer menu
  racer serve --ssh :2222
  racer scores racer_potholes`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// prepareGames validates the config flags and hands them to the racer.
func prepareGames() error {
	if _, err := parseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.LoadRacer(flagConfig); err != nil {
		return err
	}
	racer.SetConfigPath(flagConfig)
	racer.SetDifficultyPreset(flagDifficulty)
	return nil
}

// parseDifficulty validates the --difficulty flag. Empty keeps the config file's settings.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := config.ParseDifficultyPreset(s)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openDebugLog returns the logger games write to. Without --log it discards.
func openDebugLog() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }, nil
}

// openAudio starts the speaker unless muted. Failures fall back to silence.
func openAudio() (engine.AudioManager, func()) {
	if flagMute {
		return engine.NopAudio{}, func() {}
	}

	m := audio.NewManager()
	if err := m.Init(); err != nil {
		cliLog.Warn("audio disabled", "error", err)
		return engine.NopAudio{}, func() {}
	}
	return m, m.Close
}

// openStore opens the scores database. Races still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		cliLog.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
