package breakout

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game rules. The wall is always BrickColumns x BrickRows.
const (
	BrickColumns   = 8
	BrickRows      = 3
	PointsPerBrick = 10
	InitialLives   = 3
)

// Brick cell size is a fixed fraction of the playfield.
const (
	brickWidthDivisor  = 8
	brickHeightDivisor = 10
)

// Arena owns the brick wall, score, lives and the in-game paused flag,
// along with the ball and paddle it is played with.
type Arena struct {
	ScreenW, ScreenH int

	Ball   *Ball
	Paddle *Paddle
	Bricks []Brick

	Score    int
	Lives    int
	Paused   bool
	Restarts int // Restarts triggered by play (construction excluded)

	rng *rand.Rand
}

// NewArena builds the arena for the given playfield. The game starts paused
// until the first press signal.
func NewArena(cfg core.RuntimeConfig) *Arena {
	a := &Arena{
		ScreenW: cfg.ScreenW,
		ScreenH: cfg.ScreenH,
		Ball:    NewBall(cfg.ScreenW, cfg.ScreenH),
		Paddle:  NewPaddle(cfg.ScreenW, cfg.ScreenH),
		Paused:  true,
		rng:     rand.New(rand.NewSource(cfg.Seed)), //#nosec G404 -- gameplay randomness, not security
	}
	a.reset()
	return a
}

// Restart resets ball, wall, score and lives. The paddle keeps its position
// and movement state.
func (a *Arena) Restart() {
	a.reset()
	a.Restarts++
}

func (a *Arena) reset() {
	a.Ball.Reset(a.ScreenW, a.ScreenH)
	a.BuildWall()
	a.Score = 0
	a.Lives = InitialLives
}

// BuildWall replaces the bricks with a full, visible wall laid out column by
// column.
func (a *Arena) BuildWall() {
	w, h := a.brickCellSize()

	a.Bricks = make([]Brick, 0, BrickColumns*BrickRows)
	for column := 0; column < BrickColumns; column++ {
		for row := 0; row < BrickRows; row++ {
			a.Bricks = append(a.Bricks, NewBrick(row, column, w, h))
		}
	}
}

func (a *Arena) brickCellSize() (int, int) {
	return a.ScreenW / brickWidthDivisor, a.ScreenH / brickHeightDivisor
}

// WallRegion returns the area the bricks are laid out in.
func (a *Arena) WallRegion() core.Rect {
	w, h := a.brickCellSize()
	return core.NewRect(0, 0, BrickColumns*w, BrickRows*h)
}

// NumBricks returns the number of bricks built at the last restart.
func (a *Arena) NumBricks() int {
	return len(a.Bricks)
}

// VisibleBricks returns the number of bricks still standing.
func (a *Arena) VisibleBricks() int {
	count := 0
	for i := range a.Bricks {
		if a.Bricks[i].Visible() {
			count++
		}
	}
	return count
}

// WinningScore is the score at which the wall has been cleared.
func (a *Arena) WinningScore() int {
	return a.NumBricks() * PointsPerBrick
}

// HUD returns the heads-up display line.
func (a *Arena) HUD() string {
	return fmt.Sprintf("Score: %d  Lives: %d", a.Score, a.Lives)
}

// Frame captures what the renderer needs for the current state.
// The returned value shares no memory with the arena.
func (a *Arena) Frame() Frame {
	bricks := make([]core.Rect, 0, len(a.Bricks))
	for i := range a.Bricks {
		if a.Bricks[i].Visible() {
			bricks = append(bricks, a.Bricks[i].Rect)
		}
	}

	return Frame{
		ScreenW:    a.ScreenW,
		ScreenH:    a.ScreenH,
		Background: BackgroundColor,
		Paddle:     a.Paddle.Rect,
		Ball:       a.Ball.Rect,
		Bricks:     bricks,
		HUD:        a.HUD(),
		Paused:     a.Paused,
	}
}
