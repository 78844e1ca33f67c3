package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racer configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
//
// Files are decoded on top of DefaultRacerConfig, so a file only needs the keys
// it changes. A custom path must exist. The implicit locations are skipped
// when absent, but a file found there that cannot be read, parsed or
// validated is an error.
func LoadRacer(customPath string) (RacerConfig, error) {
	if customPath != "" {
		cfg, _, err := loadFile(customPath, false)
		return cfg, err
	}

	for _, path := range []string{userConfigPath("racer.yaml"), filepath.Join("configs", "racer.yaml")} {
		if path == "" {
			continue
		}
		if cfg, found, err := loadFile(path, true); found || err != nil {
			return cfg, err
		}
	}

	// Use embedded default YAML
	cfg, err := parseRacer(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// loadFile reads and parses one config file. With optional set, a missing
// file reports found=false instead of an error.
func loadFile(path string, optional bool) (cfg RacerConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return RacerConfig{}, false, nil
	}
	if err != nil {
		return RacerConfig{}, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = parseRacer(data)
	if err != nil {
		return RacerConfig{}, true, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, true, nil
}

// parseRacer decodes YAML over the defaults and validates the result.
func parseRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Non-fixed presets switch progression to time-based when it was off.
func ApplyPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "time"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.StartHealth = 5
	case DifficultyHard:
		cfg.Player.StartHealth = 3
	}
}
