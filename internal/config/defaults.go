package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Playfield bounds accepted by Validate.
const (
	MinScreenWidth  = 160
	MinScreenHeight = 120
	MaxTickRate     = 1000
)

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Loop: LoopConfig{
			TickRate: 60,
			Seed:     0,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
