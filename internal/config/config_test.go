package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultRacerConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultRacerConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRacerCustomPathOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("speeds:\n  road: 1200\nplayer:\n  start_health: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadRacer(path)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, cfg.Speeds.Road)
	assert.Equal(t, 3, cfg.Player.StartHealth)
	// Untouched keys keep their defaults
	assert.Equal(t, 250.0, cfg.Speeds.Cars)
	assert.Equal(t, -675.0, cfg.Field.MinX)
}

func TestLoadRacerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRacer(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [oops"), 0o600))
	_, err = LoadRacer(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("field:\n  min_x: 800\n"), 0o600))
	_, err = LoadRacer(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRacerSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := LoadRacer("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRacerConfig(), cfg)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "racer.yaml"), []byte("speeds:\n  road: 700\n"), 0o600))
	cfg, err = LoadRacer("")
	require.NoError(t, err)
	assert.Equal(t, 700.0, cfg.Speeds.Road)

	userDir := filepath.Join(home, ".racer", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "racer.yaml"), []byte("speeds:\n  road: 1100\n"), 0o600))
	cfg, err = LoadRacer("")
	require.NoError(t, err)
	assert.Equal(t, 1100.0, cfg.Speeds.Road)
}

func TestLoadRacerReportsBrokenImplicitFiles(t *testing.T) {
	tests := []struct {
		name    string
		user    bool
		data    string
		invalid bool
	}{
		{"user parse error", true, "field: [oops", false},
		{"user invalid", true, "field:\n  min_x: 800\n", true},
		{"local parse error", false, "field: [oops", false},
		{"local invalid", false, "field:\n  min_x: 800\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(t.TempDir())

			dir := "configs"
			if tt.user {
				dir = filepath.Join(home, ".racer", "configs")
			}
			path := filepath.Join(dir, "racer.yaml")
			require.NoError(t, os.MkdirAll(dir, 0o755))
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := LoadRacer("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RacerConfig)
	}{
		{"inverted y", func(c *RacerConfig) { c.Field.MinY, c.Field.MaxY = 10, -10 }},
		{"band inside field", func(c *RacerConfig) { c.Spawn.GenMinX = 0 }},
		{"empty band", func(c *RacerConfig) { c.Spawn.GenMaxX = c.Spawn.GenMinX }},
		{"margin too wide", func(c *RacerConfig) { c.Spawn.LaneMargin = 400 }},
		{"zero road speed", func(c *RacerConfig) { c.Speeds.Road = 0 }},
		{"health too high", func(c *RacerConfig) { c.Player.StartHealth = 6 }},
		{"health zero", func(c *RacerConfig) { c.Player.StartHealth = 0 }},
		{"zero spacing", func(c *RacerConfig) { c.Scene.Spacing = 0 }},
		{"loud music", func(c *RacerConfig) { c.Audio.MusicVolume = 2 }},
		{"zero scoring", func(c *RacerConfig) { c.Scoring.UnitsPerPoint = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRacerConfig()
	ApplyPreset(&cfg, "")
	assert.Equal(t, DefaultRacerConfig(), cfg, "empty preset keeps config")

	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, "time", cfg.Difficulty.Progression.Type)
	assert.Equal(t, 3, cfg.Player.StartHealth)

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestParseDifficultyPreset(t *testing.T) {
	assert.Equal(t, DifficultyNormal, ParseDifficultyPreset("normal"))
	assert.Equal(t, DifficultyPreset(""), ParseDifficultyPreset("insane"))
}

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 900.0, d.Speed(900, 1000, time.Hour))
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	assert.True(t, d.IsEnabled())
	assert.InDelta(t, 0.2, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.6, d.Level(0, 50*time.Second), 1e-9)
	assert.InDelta(t, 1.0, d.Level(0, time.Hour), 1e-9)
	assert.InDelta(t, 200.0, d.Speed(100, 0, time.Hour), 1e-9)
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 0},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	// MaxAt of zero is treated as one
	assert.InDelta(t, 1.0, d.Level(5, 0), 1e-9)
	assert.InDelta(t, 150.0, d.Speed(100, 5, 0), 1e-9)
}
