// Package config provides YAML-based configuration loading for the
// breakout game.
package config

// BreakoutConfig contains all configuration for the game and its host.
type BreakoutConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Loop   LoopConfig   `yaml:"loop"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// ScreenConfig defines the logical playfield size. The terminal renderer
// scales it to whatever cell grid is available.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig defines game loop pacing.
type LoopConfig struct {
	TickRate int   `yaml:"tick_rate"` // Iterations per second, 0 = unpaced
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
}

// AudioConfig defines sound effect playback.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	AssetsDir string  `yaml:"assets_dir"` // Directory holding the .ogg samples, empty = synthesized tones
	Volume    float64 `yaml:"volume"`     // 0.0 (silent) to 1.0 (full)
}

// LogConfig defines the rotating log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty = discard
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}
