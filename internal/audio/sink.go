// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
	speakerBuffer   = 100 * time.Millisecond
)

// format is the layout every cue buffer is stored in.
var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// CueFiles maps each cue to its sample file inside the assets directory.
var CueFiles = map[breakout.Cue]string{
	breakout.CuePaddleHit:      "beep1.ogg",
	breakout.CueWallBounceTop:  "beep2.ogg",
	breakout.CueWallBounceSide: "beep3.ogg",
	breakout.CueLifeLost:       "loseLife.ogg",
	breakout.CueBrickBroken:    "explode.ogg",
}

// Sink implements breakout.CueSink with one pre-decoded buffer per cue.
// Cues without a buffer, or a sink without a speaker, play nothing.
type Sink struct {
	mu      sync.Mutex
	buffers map[breakout.Cue]*beep.Buffer
	volume  float64
	play    func(beep.Streamer)
	logger  *log.Logger
}

// NewSink decodes the cue samples and opens the speaker. Samples come from
// cfg.AssetsDir when set and are synthesized otherwise. Failures are logged
// and leave the affected cues, or the whole sink, silent.
func NewSink(cfg config.AudioConfig, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var buffers map[breakout.Cue]*beep.Buffer
	if cfg.AssetsDir != "" {
		buffers = loadAssets(cfg.AssetsDir, logger)
	} else {
		buffers = synthesizeAll()
	}

	s := newSink(buffers, cfg.Volume, nil, logger)
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return s
	}
	s.play = func(st beep.Streamer) { speaker.Play(st) }

	logger.Info("audio ready", "cues", len(buffers), "assets", cfg.AssetsDir)
	return s
}

func newSink(buffers map[breakout.Cue]*beep.Buffer, volume float64, play func(beep.Streamer), logger *log.Logger) *Sink {
	return &Sink{
		buffers: buffers,
		volume:  volume,
		play:    play,
		logger:  logger,
	}
}

// Play implements breakout.CueSink. It queues the cue on the speaker and
// returns immediately.
func (s *Sink) Play(c breakout.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[c]
	if !ok || s.play == nil {
		return
	}
	s.play(newVolume(buf.Streamer(0, buf.Len()), s.volume))
}

// Close stops playback and releases the speaker.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.play == nil {
		return
	}
	speaker.Clear()
	s.play = nil
}

func synthesizeAll() map[breakout.Cue]*beep.Buffer {
	buffers := make(map[breakout.Cue]*beep.Buffer, len(breakout.Cues))
	for _, c := range breakout.Cues {
		buffers[c] = synthesize(c, format)
	}
	return buffers
}

// loadAssets decodes every cue file found in dir.
func loadAssets(dir string, logger *log.Logger) map[breakout.Cue]*beep.Buffer {
	buffers := make(map[breakout.Cue]*beep.Buffer, len(CueFiles))
	for _, c := range breakout.Cues {
		path := filepath.Join(dir, CueFiles[c])
		buf, err := loadFile(path)
		if err != nil {
			logger.Warn("sound cue disabled", "cue", c, "error", err)
			continue
		}
		buffers[c] = buf
	}
	return buffers
}

// loadFile decodes an ogg file and resamples it to the speaker rate.
func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- asset path from config
	if err != nil {
		return nil, fmt.Errorf("audio: failed to open %s: %w", path, err)
	}

	streamer, fileFormat, err := vorbis.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
	}
	defer func() { _ = streamer.Close() }()

	buf := beep.NewBuffer(format)
	buf.Append(beep.Resample(resampleQuality, fileFormat.SampleRate, sampleRate, streamer))
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: failed to read %s: %w", path, err)
	}
	return buf, nil
}
