package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Directive is the narrow surface input adapters drive the game through.
type Directive interface {
	// PressAt unpauses the game and steers the paddle toward the half of
	// the playfield that contains x.
	PressAt(x int)
	// Release stops the paddle. It does not pause the game.
	Release()
}

// SignalKind distinguishes the two touch signals.
type SignalKind int

const (
	SignalPress SignalKind = iota
	SignalRelease
)

// String returns the signal name.
func (k SignalKind) String() string {
	switch k {
	case SignalPress:
		return "press"
	case SignalRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Signal is one queued input event.
type Signal struct {
	Kind SignalKind
	X    int // Logical x for presses
}

// inputQueueSize bounds the signals buffered between two iterations.
const inputQueueSize = 32

// PressAt implements Directive. Safe to call from any goroutine.
func (l *Loop) PressAt(x int) {
	l.send(Signal{Kind: SignalPress, X: x})
}

// Release implements Directive. Safe to call from any goroutine.
func (l *Loop) Release() {
	l.send(Signal{Kind: SignalRelease})
}

// send enqueues without blocking; a full queue drops the signal.
func (l *Loop) send(s Signal) {
	select {
	case l.signals <- s:
	default:
		l.logger.Debug("input queue full, dropping signal", "signal", s.Kind, "x", s.X)
	}
}

// drainSignals applies every queued signal. Runs on the loop goroutine only.
func (l *Loop) drainSignals() {
	for {
		select {
		case s := <-l.signals:
			applySignal(l.arena, s)
		default:
			return
		}
	}
}

func applySignal(a *Arena, s Signal) {
	switch s.Kind {
	case SignalPress:
		x := core.Clamp(s.X, 0, a.ScreenW)
		a.Paused = false
		if x > a.ScreenW/2 {
			a.Paddle.SetMovementState(MoveRight)
		} else {
			a.Paddle.SetMovementState(MoveLeft)
		}
	case SignalRelease:
		a.Paddle.SetMovementState(MoveStopped)
	}
}
