package main

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestConfigCommandAppliesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--fps", "30", "--seed", "42", "--log-level", "debug"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var cfg config.BreakoutConfig
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}

	if cfg.Loop.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected 30", cfg.Loop.TickRate)
	}
	if cfg.Loop.Seed != 42 {
		t.Errorf("seed = %d, expected 42", cfg.Loop.Seed)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, expected debug", cfg.Log.Level)
	}
	// Untouched values come from the defaults
	if cfg.Screen != config.DefaultBreakoutConfig().Screen {
		t.Errorf("screen = %+v, expected defaults", cfg.Screen)
	}
}
