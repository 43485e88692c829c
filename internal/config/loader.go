package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const configFile = "breakout.yaml"

// Load loads Breakout configuration. Keys missing from the file keep their
// default values, and the result is validated.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func Load(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath) //#nosec G304 -- path supplied by the user
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped so the next location in the search order is tried.
func tryLoad(path string) (BreakoutConfig, bool) {
	cfg := DefaultBreakoutConfig()
	data, err := os.ReadFile(path) //#nosec G304 -- fixed search locations
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate clamps values that cannot produce a playable game.
func (c *BreakoutConfig) Validate() {
	c.Screen.Width = core.Max(c.Screen.Width, MinScreenWidth)
	c.Screen.Height = core.Max(c.Screen.Height, MinScreenHeight)
	c.Loop.TickRate = core.Clamp(c.Loop.TickRate, 0, MaxTickRate)

	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.MaxSizeMB = core.Max(c.Log.MaxSizeMB, 1)
	c.Log.MaxBackups = core.Max(c.Log.MaxBackups, 0)
	c.Log.MaxAgeDays = core.Max(c.Log.MaxAgeDays, 0)
}

// Runtime returns the settings the game loop is built from.
func (c BreakoutConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		TickRate: c.Loop.TickRate,
		Seed:     c.Loop.Seed,
	}
}

// Marshal renders the configuration as YAML.
func (c BreakoutConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
