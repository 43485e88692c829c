package breakout

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// frameRecorder keeps the frames it is asked to render.
type frameRecorder struct {
	mu     sync.Mutex
	last   Frame
	frames atomic.Int64
}

func (r *frameRecorder) Render(f Frame) {
	r.mu.Lock()
	r.last = f
	r.mu.Unlock()
	r.frames.Add(1)
}

func (r *frameRecorder) Last() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// blockingRenderer parks the loop goroutine inside Render until released.
type blockingRenderer struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingRenderer() *blockingRenderer {
	return &blockingRenderer{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (r *blockingRenderer) Render(Frame) {
	r.once.Do(func() { close(r.entered) })
	<-r.release
}

// stepClock advances by a fixed amount on every reading.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoopPressUnpausesAndSteers(t *testing.T) {
	rec := &frameRecorder{}
	l := NewLoop(testConfig(), rec, nil, nil)

	l.PressAt(600)
	l.Step()

	if l.arena.Paused {
		t.Error("press should unpause the arena")
	}
	if l.arena.Paddle.State != MoveRight {
		t.Errorf("paddle state = %s, expected right", l.arena.Paddle.State)
	}
	if rec.Last().Paused {
		t.Error("rendered frame should not be paused")
	}
}

func TestLoopPressSides(t *testing.T) {
	tests := []struct {
		x    int
		want MoveState
	}{
		{x: 0, want: MoveLeft},
		{x: 399, want: MoveLeft},
		{x: 400, want: MoveLeft},
		{x: 401, want: MoveRight},
		{x: 800, want: MoveRight},
		{x: -50, want: MoveLeft},
		{x: 5000, want: MoveRight},
	}

	for _, tt := range tests {
		l := NewLoop(testConfig(), nil, nil, nil)
		l.PressAt(tt.x)
		l.Step()
		if l.arena.Paddle.State != tt.want {
			t.Errorf("PressAt(%d): state = %s, expected %s", tt.x, l.arena.Paddle.State, tt.want)
		}
	}
}

func TestLoopReleaseStopsWithoutPausing(t *testing.T) {
	l := NewLoop(testConfig(), nil, nil, nil)

	l.PressAt(700)
	l.Step()
	l.Release()
	l.Step()

	if l.arena.Paddle.State != MoveStopped {
		t.Errorf("paddle state = %s, expected stopped", l.arena.Paddle.State)
	}
	if l.arena.Paused {
		t.Error("release must not pause the game")
	}
}

func TestLoopPausedStepRendersWithoutMoving(t *testing.T) {
	rec := &frameRecorder{}
	l := NewLoop(testConfig(), rec, nil, nil)
	ball := l.arena.Ball.Rect

	l.Step()
	l.Step()

	if l.arena.Ball.Rect != ball {
		t.Error("ball moved while paused")
	}
	if rec.frames.Load() != 2 {
		t.Errorf("rendered %d frames, expected 2", rec.frames.Load())
	}
	if !rec.Last().Paused {
		t.Error("frame should report paused")
	}
	if rec.Last().Seq != 2 {
		t.Errorf("frame Seq = %d, expected 2", rec.Last().Seq)
	}
}

func TestLoopRunningStepMoves(t *testing.T) {
	l := NewLoop(testConfig(), nil, nil, nil)
	ball := l.arena.Ball.Rect
	paddle := l.arena.Paddle.Rect

	l.PressAt(700)
	l.Step()

	if l.arena.Ball.Rect.X != ball.X+ballLaunchSpeedX || l.arena.Ball.Rect.Y != ball.Y-ballSpeedY {
		t.Errorf("ball at (%d, %d), expected one launch step from (%d, %d)", l.arena.Ball.Rect.X, l.arena.Ball.Rect.Y, ball.X, ball.Y)
	}
	if l.arena.Paddle.Rect.X != paddle.X+paddleSpeed {
		t.Errorf("paddle X = %d, expected %d", l.arena.Paddle.Rect.X, paddle.X+paddleSpeed)
	}
}

func TestLoopFPSMeasurement(t *testing.T) {
	l := NewLoop(testConfig(), nil, nil, nil)

	l.clock = &stepClock{now: time.Unix(0, 0), step: 20 * time.Millisecond}
	l.Step()
	if l.FPS() != 50 {
		t.Errorf("FPS() = %d, expected 50", l.FPS())
	}

	// Sub-millisecond frames keep the previous estimate
	l.clock = &stepClock{now: time.Unix(0, 0), step: 100 * time.Microsecond}
	l.Step()
	if l.FPS() != 50 {
		t.Errorf("FPS() = %d, expected the previous value 50", l.FPS())
	}
}

func TestLoopInputQueueFullDoesNotBlock(t *testing.T) {
	l := NewLoop(testConfig(), nil, nil, nil)

	done := make(chan struct{})
	go func() {
		for n := 0; n < inputQueueSize*4; n++ {
			l.PressAt(700)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PressAt blocked on a full queue")
	}

	l.Step()
	if l.arena.Paddle.State != MoveRight {
		t.Errorf("paddle state = %s, expected right", l.arena.Paddle.State)
	}
	if len(l.signals) != 0 {
		t.Errorf("queue holds %d signals after a step, expected 0", len(l.signals))
	}
}

func TestLoopResumePause(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 500
	rec := &frameRecorder{}
	l := NewLoop(cfg, rec, nil, nil)

	if l.State() != StateStopped {
		t.Fatalf("State() = %s, expected stopped", l.State())
	}

	l.Resume()
	l.Resume() // no-op while active

	waitFor(t, func() bool { return rec.frames.Load() >= 3 })
	if l.State() != StatePaused {
		t.Errorf("State() = %s, expected paused before any press", l.State())
	}

	l.PressAt(700)
	waitFor(t, func() bool { return l.State() == StateRunning })

	l.Pause(context.Background())
	if l.State() != StateStopped {
		t.Errorf("State() = %s, expected stopped", l.State())
	}

	count := rec.frames.Load()
	time.Sleep(20 * time.Millisecond)
	if rec.frames.Load() != count {
		t.Error("frames rendered after Pause returned")
	}

	// Pause on a stopped loop is a no-op
	l.Pause(context.Background())

	l.Resume()
	waitFor(t, func() bool { return rec.frames.Load() > count })
	l.Pause(context.Background())
}

func TestLoopResumeEntersPaused(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 500
	rec := &frameRecorder{}
	l := NewLoop(cfg, rec, nil, nil)

	l.Resume()
	l.PressAt(700)
	waitFor(t, func() bool { return l.State() == StateRunning })
	l.Pause(context.Background())

	l.Resume()
	defer l.Pause(context.Background())
	if l.State() != StatePaused {
		t.Fatalf("State() = %s right after Resume, expected paused", l.State())
	}

	count := rec.frames.Load()
	waitFor(t, func() bool { return rec.frames.Load() >= count+3 })
	if l.State() != StatePaused {
		t.Errorf("State() = %s, expected paused until the next press", l.State())
	}
	if !rec.Last().Paused {
		t.Error("frames rendered after Resume should report paused")
	}
	ball := rec.Last().Ball
	waitFor(t, func() bool { return rec.frames.Load() >= count+6 })
	if rec.Last().Ball != ball {
		t.Error("ball moved before any press after Resume")
	}

	l.PressAt(700)
	waitFor(t, func() bool { return l.State() == StateRunning })
}

func TestLoopPauseInterrupted(t *testing.T) {
	r := newBlockingRenderer()
	l := NewLoop(testConfig(), r, nil, nil)

	l.Resume()
	<-r.entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	returned := make(chan struct{})
	go func() {
		l.Pause(ctx)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Pause did not honour the context")
	}
	if l.State() != StateStopped {
		t.Errorf("State() = %s, expected stopped", l.State())
	}

	close(r.release)

	// Resume waits for the stale goroutine before starting a new one
	l.Resume()
	if l.State() == StateStopped {
		t.Error("loop should be active after Resume")
	}
	l.Pause(context.Background())
}

func TestLoopDeterministic(t *testing.T) {
	script := func(l *Loop, i int) {
		switch {
		case i%90 == 0:
			l.PressAt(100)
		case i%90 == 45:
			l.PressAt(700)
		case i%30 == 10:
			l.Release()
		}
	}

	run := func() uint64 {
		l := NewLoop(testConfig(), nil, nil, nil)
		for i := 0; i < 2000; i++ {
			script(l, i)
			l.Step()
		}
		snap := l.arena.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("same seed and input produced different states: %d vs %d", h1, h2)
	}
}

func TestLoopStateString(t *testing.T) {
	if StateStopped.String() != "stopped" || StatePaused.String() != "paused" || StateRunning.String() != "running" {
		t.Error("unexpected state names")
	}
}
