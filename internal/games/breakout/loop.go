package breakout

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LoopState is the lifecycle state of the game loop.
type LoopState int32

const (
	StateStopped LoopState = iota // No goroutine iterating
	StatePaused                   // Iterating, render only
	StateRunning                  // Iterating, simulation advancing
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Clock supplies the frame timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Loop drives update, collision resolution and render on one dedicated
// goroutine. All arena state is owned by that goroutine; other goroutines
// reach it only through PressAt, Release, Resume and Pause.
type Loop struct {
	arena    *Arena
	resolver *Resolver
	renderer Renderer
	logger   *log.Logger
	clock    Clock
	tickRate int

	signals chan Signal
	playing atomic.Bool
	paused  atomic.Bool // Mirror of arena.Paused for State()
	fps     atomic.Int64
	frames  uint64

	mu   sync.Mutex // Serializes Resume and Pause
	stop chan struct{}
	done chan struct{}
}

// NewLoop creates a stopped loop over a fresh arena. A nil renderer, sink or
// logger is replaced by a no-op.
func NewLoop(cfg core.RuntimeConfig, renderer Renderer, sink CueSink, logger *log.Logger) *Loop {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Loop{
		arena:    NewArena(cfg),
		resolver: NewResolver(sink),
		renderer: renderer,
		logger:   logger,
		clock:    systemClock{},
		tickRate: cfg.TickRate,
		signals:  make(chan Signal, inputQueueSize),
	}
	l.paused.Store(l.arena.Paused)
	return l
}

// State returns the current lifecycle state. Safe from any goroutine.
func (l *Loop) State() LoopState {
	if !l.playing.Load() {
		return StateStopped
	}
	if l.paused.Load() {
		return StatePaused
	}
	return StateRunning
}

// FPS returns the frame rate measured on the last iteration that took at
// least a millisecond. It does not affect motion.
func (l *Loop) FPS() int64 {
	return l.fps.Load()
}

// Resume starts iterating on a new goroutine with the game paused until the
// next press. It is a no-op while the loop is already active. If a previous
// Pause gave up waiting, Resume first waits for that goroutine to finish.
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.playing.Load() {
		return
	}
	if l.done != nil {
		<-l.done
	}
	l.arena.Paused = true
	l.paused.Store(true)

	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	l.playing.Store(true)

	l.logger.Info("game loop resumed", "tick_rate", l.tickRate)
	go l.run(l.stop, l.done)
}

// Pause stops iterating and blocks until the loop goroutine has exited.
// If ctx ends first the interruption is logged and Pause returns anyway;
// the goroutine still exits after its current frame.
func (l *Loop) Pause(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.playing.Load() {
		return
	}
	l.playing.Store(false)
	close(l.stop)

	select {
	case <-l.done:
		// frames is safe to read once the goroutine has exited.
		l.logger.Info("game loop paused", "frames", l.frames)
	case <-ctx.Done():
		l.logger.Warn("interrupted while joining game loop", "error", ctx.Err())
	}
}

func (l *Loop) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var tick <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for l.playing.Load() {
		l.Step()

		if tick == nil {
			continue
		}
		select {
		case <-tick:
		case <-stop:
			return
		}
	}
}

// Step runs one iteration: apply queued input, update unless paused, render,
// then measure the frame. It must not run concurrently with itself or with
// an active loop goroutine.
func (l *Loop) Step() {
	start := l.clock.Now()

	l.drainSignals()
	if !l.arena.Paused {
		l.update()
	}
	l.render()

	elapsed := l.clock.Now().Sub(start)
	if ms := elapsed.Milliseconds(); ms >= 1 {
		l.fps.Store(1000 / ms)
	}
	l.paused.Store(l.arena.Paused)
}

func (l *Loop) update() {
	fps := l.fps.Load()
	l.arena.Paddle.Update(fps)
	l.arena.Ball.Update(fps)

	res := l.resolver.Resolve(l.arena)
	if res.Restart != RestartNone {
		snap := l.arena.Snapshot()
		l.logger.Info("arena restarted",
			"reason", res.Restart,
			"restarts", l.arena.Restarts,
		)
		l.logger.Debug("arena snapshot", "hash", snap.Hash())
	}
}

func (l *Loop) render() {
	l.frames++
	f := l.arena.Frame()
	f.FPS = l.fps.Load()
	f.Seq = l.frames
	l.renderer.Render(f)
}
