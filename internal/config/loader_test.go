package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
screen:
  width: 1024
  height: 768
loop:
  tick_rate: 30
  seed: 99
audio:
  enabled: false
  volume: 0.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Screen.Width != 1024 || cfg.Screen.Height != 768 {
		t.Errorf("screen = %dx%d, expected 1024x768", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Loop.TickRate != 30 || cfg.Loop.Seed != 99 {
		t.Errorf("loop = %+v", cfg.Loop)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	// Missing section keeps defaults
	if cfg.Log != DefaultBreakoutConfig().Log {
		t.Errorf("log = %+v, expected defaults", cfg.Log)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "screen: [not, a, map")
	_, err := Load(bad)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.HasPrefix(err.Error(), "config: failed to parse") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "breakout.yaml"), "loop:\n  tick_rate: 20\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Loop.TickRate != 20 {
		t.Errorf("tick_rate = %d, expected 20 from ./configs", cfg.Loop.TickRate)
	}

	// User directory wins over local
	writeFile(t, filepath.Join(home, ".breakout", "configs", "breakout.yaml"), "loop:\n  tick_rate: 40\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Loop.TickRate != 40 {
		t.Errorf("tick_rate = %d, expected 40 from the user directory", cfg.Loop.TickRate)
	}

	// A malformed user file falls through to the next location
	writeFile(t, filepath.Join(home, ".breakout", "configs", "breakout.yaml"), "loop: [")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Loop.TickRate != 20 {
		t.Errorf("tick_rate = %d, expected fallback to ./configs", cfg.Loop.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *BreakoutConfig)
		check func(c BreakoutConfig) bool
	}{
		{
			name:  "tiny screen",
			apply: func(c *BreakoutConfig) { c.Screen.Width, c.Screen.Height = 10, -5 },
			check: func(c BreakoutConfig) bool {
				return c.Screen.Width == MinScreenWidth && c.Screen.Height == MinScreenHeight
			},
		},
		{
			name:  "negative tick rate",
			apply: func(c *BreakoutConfig) { c.Loop.TickRate = -1 },
			check: func(c BreakoutConfig) bool { return c.Loop.TickRate == 0 },
		},
		{
			name:  "huge tick rate",
			apply: func(c *BreakoutConfig) { c.Loop.TickRate = 1 << 20 },
			check: func(c BreakoutConfig) bool { return c.Loop.TickRate == MaxTickRate },
		},
		{
			name:  "volume out of range",
			apply: func(c *BreakoutConfig) { c.Audio.Volume = 3 },
			check: func(c BreakoutConfig) bool { return c.Audio.Volume == 1 },
		},
		{
			name:  "negative volume",
			apply: func(c *BreakoutConfig) { c.Audio.Volume = -0.2 },
			check: func(c BreakoutConfig) bool { return c.Audio.Volume == 0 },
		},
		{
			name:  "empty log level",
			apply: func(c *BreakoutConfig) { c.Log.Level = "" },
			check: func(c BreakoutConfig) bool { return c.Log.Level == "info" },
		},
		{
			name:  "zero log size",
			apply: func(c *BreakoutConfig) { c.Log.MaxSizeMB = 0 },
			check: func(c BreakoutConfig) bool { return c.Log.MaxSizeMB == 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.apply(&cfg)
			cfg.Validate()
			if !tt.check(cfg) {
				t.Errorf("unexpected config after Validate: %+v", cfg)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Loop.Seed = 7

	rc := cfg.Runtime()
	if rc.ScreenW != 800 || rc.ScreenH != 600 || rc.TickRate != 60 || rc.Seed != 7 {
		t.Errorf("Runtime() = %+v", rc)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Audio.AssetsDir = "/tmp/sounds"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "assets_dir: /tmp/sounds") {
		t.Errorf("marshalled YAML missing assets_dir:\n%s", data)
	}

	var back BreakoutConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
