package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer producing duration worth of wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)), //#nosec G404 -- noise, not security
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is handled as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	return NewEnvelope(osc, t.duration, 5*time.Millisecond, t.duration/2, rate)
}

// cueTones stand in for the sampled effects when no asset directory is set.
var cueTones = map[breakout.Cue][]tone{
	breakout.CuePaddleHit:      {{freq: 660, duration: 60 * time.Millisecond, wave: WaveSine}},
	breakout.CueWallBounceTop:  {{freq: 880, duration: 50 * time.Millisecond, wave: WaveSine}},
	breakout.CueWallBounceSide: {{freq: 520, duration: 50 * time.Millisecond, wave: WaveSine}},
	breakout.CueBrickBroken:    {{freq: 0, duration: 120 * time.Millisecond, wave: WaveNoise}},
	breakout.CueLifeLost: {
		{freq: 440, duration: 150 * time.Millisecond, wave: WaveSquare},
		{freq: 220, duration: 250 * time.Millisecond, wave: WaveSquare},
	},
}

// synthesize renders the tones for c into a buffer.
func synthesize(c breakout.Cue, format beep.Format) *beep.Buffer {
	tones := cueTones[c]
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, newVolume(t.streamer(format.SampleRate), 0.4))
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Seq(parts...))
	return buf
}
