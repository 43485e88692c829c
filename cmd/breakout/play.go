package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagMute   bool
	flagAssets string
	flagWidth  int
	flagHeight int
)

var errNotTerminal = errors.New("stdout is not a terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing breakout.

Controls:
  Left/A       - Move paddle left
  Right/D      - Move paddle right
  Space/S      - Stop the paddle
  Mouse click  - Move toward the clicked half, release to stop
  ?            - Toggle help
  Q/Ctrl+C     - Quit

The game starts paused and resumes on the first move. It pauses again
when the terminal loses focus.

Examples:
  breakout play
  breakout play --mute
  breakout play --assets ./sounds
  breakout play --width 1024 --height 768`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with .ogg sound samples")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Logical playfield width (0 = from config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Logical playfield height (0 = from config)")
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command) (config.BreakoutConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Loop.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Lookup("mute") != nil && flagMute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("assets") {
		cfg.Audio.AssetsDir = flagAssets
	}
	if flags.Changed("width") {
		cfg.Screen.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Screen.Height = flagHeight
	}

	cfg.Validate()
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //#nosec G115 -- file descriptor fits in int
		return errNotTerminal
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Use time-based seed if not specified
	if cfg.Loop.Seed == 0 {
		cfg.Loop.Seed = time.Now().UnixNano()
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	var sink breakout.CueSink = breakout.NopSink{}
	if cfg.Audio.Enabled {
		s := audio.NewSink(cfg.Audio, logger)
		defer s.Close()
		sink = s
	}

	rc := cfg.Runtime()
	frames := tui.NewFrameBuffer()
	loop := breakout.NewLoop(rc, frames, sink, logger)

	logger.Info("starting",
		"screen_w", rc.ScreenW,
		"screen_h", rc.ScreenH,
		"tick_rate", rc.TickRate,
		"seed", rc.Seed,
		"audio", cfg.Audio.Enabled,
	)

	runErr := tui.Run(loop, frames, rc)

	// The model pauses on quit; this covers a program that ended any other way.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	loop.Pause(ctx)

	if runErr != nil {
		logger.Error("terminal program failed", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	logger.Info("exited", "fps", loop.FPS())
	return nil
}
