package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the racer SSH server",
	Long: `Start an SSH server that allows users to connect and race.

Each SSH connection gets its own session with a track picker menu.
Scores are stored per-server (all users share the same leaderboard).
Remote sessions are silent; audio only plays for local races.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.racer/host_key

Examples:
  racer serve                           # Listen on :23234 with auto-generated key
  racer serve --ssh :2222               # Listen on port 2222
  racer serve --host-key ./my_host_key  # Use specific host key
  racer serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := prepareGames(); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer-ssh",
	})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting racer SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
