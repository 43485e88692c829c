// Package breakout implements the brick breaker simulation: entities, the
// arena that owns them, per-frame collision resolution and the game loop
// that drives update and render on a dedicated goroutine.
package breakout

import (
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball tuning in logical units per frame.
const (
	ballSize         = 10
	ballSpeedY       = 6 // Vertical speed magnitude, never changes
	ballMinSpeedX    = 2 // Smallest horizontal speed after a paddle bounce
	ballMaxSpeedX    = 6 // Largest horizontal speed after a paddle bounce
	ballLaunchSpeedX = 3 // Horizontal speed after a restart
)

// Paddle tuning in logical units.
const (
	paddleWidth  = 130
	paddleHeight = 20
	paddleSpeed  = 8 // Units per frame while moving
)

// Ball is the moving rectangle. Velocity signs encode direction only; the
// magnitudes always come from the ball tuning constants above.
type Ball struct {
	Rect   core.Rect
	VX, VY int
}

// NewBall creates a ball at its restart position for the given playfield.
func NewBall(screenW, screenH int) *Ball {
	b := &Ball{}
	b.Reset(screenW, screenH)
	return b
}

// Update advances the ball by one frame. fps is informational only: the
// ball moves a fixed step per frame whatever the frame rate.
func (b *Ball) Update(fps int64) {
	b.Rect = b.Rect.Translate(b.VX, b.VY)
}

// ReverseX flips horizontal direction.
func (b *Ball) ReverseX() {
	b.VX = -b.VX
}

// ReverseY flips vertical direction.
func (b *Ball) ReverseY() {
	b.VY = -b.VY
}

// SetRandomXVelocity picks a horizontal speed in [ballMinSpeedX, ballMaxSpeedX]
// with a random direction.
func (b *Ball) SetRandomXVelocity(rng *rand.Rand) {
	speed := ballMinSpeedX + rng.Intn(ballMaxSpeedX-ballMinSpeedX+1)
	if rng.Intn(2) == 0 {
		speed = -speed
	}
	b.VX = speed
}

// ClearObstacleY moves the ball vertically so its bottom edge sits at y.
func (b *Ball) ClearObstacleY(y int) {
	b.Rect.Y = y - b.Rect.H
}

// ClearObstacleX moves the ball horizontally so its left edge sits at x.
func (b *Ball) ClearObstacleX(x int) {
	b.Rect.X = x
}

// Reset puts the ball back at the launch point: horizontally centered with
// its bottom edge on the paddle row, heading up and to the right.
func (b *Ball) Reset(screenW, screenH int) {
	b.Rect = core.NewRect(screenW/2, screenH-paddleHeight-ballSize, ballSize, ballSize)
	b.VX = ballLaunchSpeedX
	b.VY = -ballSpeedY
}

// MoveState is the paddle movement directive.
type MoveState int32

const (
	MoveStopped MoveState = iota
	MoveLeft
	MoveRight
)

// String returns the directive name.
func (m MoveState) String() string {
	switch m {
	case MoveStopped:
		return "stopped"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is the player's bat at the bottom of the playfield.
type Paddle struct {
	Rect    core.Rect
	State   MoveState
	screenW int
}

// NewPaddle creates a stopped paddle centered on the bottom row.
func NewPaddle(screenW, screenH int) *Paddle {
	return &Paddle{
		Rect:    core.NewRect((screenW-paddleWidth)/2, screenH-paddleHeight, paddleWidth, paddleHeight),
		State:   MoveStopped,
		screenW: screenW,
	}
}

// SetMovementState changes the directive applied on the next Update.
func (p *Paddle) SetMovementState(s MoveState) {
	p.State = s
}

// Update moves the paddle one step in its current direction, clamped to the
// playfield. fps is informational only.
func (p *Paddle) Update(fps int64) {
	switch p.State {
	case MoveLeft:
		p.Rect.X -= paddleSpeed
	case MoveRight:
		p.Rect.X += paddleSpeed
	}
	p.Rect.X = core.Clamp(p.Rect.X, 0, core.Max(p.screenW-p.Rect.W, 0))
}

// Brick is a destructible cell of the wall. Its rectangle never changes;
// visibility goes from true to false at most once.
type Brick struct {
	Row, Column int
	Rect        core.Rect
	visible     bool
}

// brickPadding is the gap kept on every side of a brick.
const brickPadding = 1

// NewBrick creates a visible brick for grid cell (row, column) of the given
// cell size.
func NewBrick(row, column, width, height int) Brick {
	return Brick{
		Row:    row,
		Column: column,
		Rect: core.RectFromEdges(
			column*width+brickPadding,
			row*height+brickPadding,
			column*width+width-brickPadding,
			row*height+height-brickPadding,
		),
		visible: true,
	}
}

// Visible reports whether the brick is still standing.
func (b *Brick) Visible() bool {
	return b.visible
}

// SetInvisible destroys the brick.
func (b *Brick) SetInvisible() {
	b.visible = false
}
