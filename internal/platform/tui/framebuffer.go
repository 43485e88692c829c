package tui

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// FrameBuffer implements breakout.Renderer by keeping only the most recent
// frame. The game loop writes it from its own goroutine and the Bubble Tea
// program reads it on each redraw tick, so neither side ever waits on the
// other.
type FrameBuffer struct {
	latest    atomic.Pointer[breakout.Frame]
	available atomic.Bool
	dropped   atomic.Uint64
}

// NewFrameBuffer creates an empty buffer. Frames are dropped until the
// surface is marked available.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Render implements breakout.Renderer.
func (b *FrameBuffer) Render(f breakout.Frame) {
	if !b.available.Load() {
		b.dropped.Add(1)
		return
	}
	b.latest.Store(&f)
}

// SetAvailable marks whether there is a surface to draw on.
func (b *FrameBuffer) SetAvailable(ok bool) {
	b.available.Store(ok)
}

// Latest returns the most recent frame, if any has been rendered.
func (b *FrameBuffer) Latest() (breakout.Frame, bool) {
	f := b.latest.Load()
	if f == nil {
		return breakout.Frame{}, false
	}
	return *f, true
}

// Dropped returns how many frames arrived while no surface was available.
func (b *FrameBuffer) Dropped() uint64 {
	return b.dropped.Load()
}
