package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Palette used when drawing a frame.
const (
	BackgroundColor = core.ColorBlue
	PaddleColor     = core.ColorWhite
	BallColor       = core.ColorWhite
	BrickColor      = core.ColorOrange
	HUDColor        = core.ColorWhite
)

// Frame is the drawable state of one iteration. It is a value: renderers may
// keep it after Render returns.
type Frame struct {
	ScreenW, ScreenH int // Logical playfield size the rects are expressed in

	Background core.Color
	Paddle     core.Rect
	Ball       core.Rect
	Bricks     []core.Rect // Visible bricks only, in storage order
	HUD        string

	Paused bool
	FPS    int64
	Seq    uint64 // Iteration number, increases by one per rendered frame
}

// Renderer draws frames. Render must not fail: if the destination surface is
// unavailable the frame is skipped silently.
type Renderer interface {
	Render(f Frame)
}

// NopRenderer discards every frame.
type NopRenderer struct{}

// Render implements Renderer.
func (NopRenderer) Render(Frame) {}
