package breakout

// Cue is an audio notification fired while resolving collisions.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueBrickBroken
	CueWallBounceTop
	CueWallBounceSide
	CueLifeLost
)

// Cues lists every cue in declaration order.
var Cues = []Cue{CuePaddleHit, CueBrickBroken, CueWallBounceTop, CueWallBounceSide, CueLifeLost}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "PaddleHit"
	case CueBrickBroken:
		return "BrickBroken"
	case CueWallBounceTop:
		return "WallBounceTop"
	case CueWallBounceSide:
		return "WallBounceSide"
	case CueLifeLost:
		return "LifeLost"
	default:
		return "Unknown"
	}
}

// CueSink receives cues synchronously from collision resolution. Play must
// not fail: a cue that cannot be played is dropped.
type CueSink interface {
	Play(c Cue)
}

// NopSink ignores every cue.
type NopSink struct{}

// Play implements CueSink.
func (NopSink) Play(Cue) {}

// Clamp offsets applied after a bounce so the ball does not re-trigger the
// same collision on the next frame. The right wall pair is asymmetric
// because the ball is positioned by its left edge.
const (
	paddleBounceOffset  = 2  // Ball bottom lands this far above the paddle top
	floorBounceOffset   = 2  // Ball bottom lands this far above the screen bottom
	ceilingBounceOffset = 12 // Ball bottom lands at this y after hitting the top
	leftWallOffset      = 2  // Ball left lands at this x after hitting the left wall
	rightWallTrigger    = 10 // Bounce once ball right exceeds screenW minus this
	rightWallOffset     = 22 // Ball left lands at screenW minus this
)

// RestartReason tells why a resolution pass restarted the arena.
type RestartReason int

const (
	RestartNone RestartReason = iota
	RestartOutOfLives
	RestartCleared
)

// String returns the reason name.
func (r RestartReason) String() string {
	switch r {
	case RestartNone:
		return "none"
	case RestartOutOfLives:
		return "out_of_lives"
	case RestartCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of one resolution pass.
type Resolution struct {
	Cues    []Cue // In firing order
	Restart RestartReason
}

// Resolver detects and resolves all collisions of one frame.
type Resolver struct {
	sink CueSink
}

// NewResolver creates a resolver that forwards cues to sink.
func NewResolver(sink CueSink) *Resolver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Resolver{sink: sink}
}

// Resolve runs every collision check against the arena in a fixed order:
// bricks, paddle, floor, ceiling, left wall, right wall, then the clear check.
//
// Bricks are checked without early exit, so a ball overlapping two bricks
// breaks both in the same frame and reverses vertically twice.
func (r *Resolver) Resolve(a *Arena) Resolution {
	var res Resolution
	ball := a.Ball

	for i := range a.Bricks {
		brick := &a.Bricks[i]
		if !brick.Visible() || !brick.Rect.Intersects(ball.Rect) {
			continue
		}
		brick.SetInvisible()
		ball.ReverseY()
		a.Score += PointsPerBrick
		r.emit(&res, CueBrickBroken)
	}

	if a.Paddle.Rect.Intersects(ball.Rect) {
		ball.SetRandomXVelocity(a.rng)
		ball.ReverseY()
		ball.ClearObstacleY(a.Paddle.Rect.Top() - paddleBounceOffset)
		r.emit(&res, CuePaddleHit)
	}

	if ball.Rect.Bottom() > a.ScreenH {
		ball.ReverseY()
		ball.ClearObstacleY(a.ScreenH - floorBounceOffset)
		a.Lives--
		r.emit(&res, CueLifeLost)

		if a.Lives == 0 {
			a.Paused = true
			a.Restart()
			res.Restart = RestartOutOfLives
		}
	}

	if ball.Rect.Top() < 0 {
		ball.ReverseY()
		ball.ClearObstacleY(ceilingBounceOffset)
		r.emit(&res, CueWallBounceTop)
	}

	if ball.Rect.Left() < 0 {
		ball.ReverseX()
		ball.ClearObstacleX(leftWallOffset)
		r.emit(&res, CueWallBounceSide)
	}

	if ball.Rect.Right() > a.ScreenW-rightWallTrigger {
		ball.ReverseX()
		ball.ClearObstacleX(a.ScreenW - rightWallOffset)
		r.emit(&res, CueWallBounceSide)
	}

	if a.Score == a.WinningScore() {
		a.Paused = true
		a.Restart()
		res.Restart = RestartCleared
	}

	return res
}

func (r *Resolver) emit(res *Resolution, c Cue) {
	res.Cues = append(res.Cues, c)
	r.sink.Play(c)
}
