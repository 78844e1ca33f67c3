package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/road-racer/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the racer configuration",
	Long: `Print the built-in racer configuration as YAML.

Save the output to ~/.racer/configs/racer.yaml and edit it to tune the
game, or pass it with --config.

With --effective, prints the config after loading --config and applying
--difficulty instead.

Examples:
  racer config > ~/.racer/configs/racer.yaml
  racer config --effective --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the config the game would actually use")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	return writeEffectiveConfig(cmd.OutOrStdout(), flagConfig, flagDifficulty)
}

// writeEffectiveConfig loads the config the game would use and writes it as YAML.
func writeEffectiveConfig(w io.Writer, path, difficulty string) error {
	preset, err := parseDifficulty(difficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadRacer(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(out)
	return err
}
