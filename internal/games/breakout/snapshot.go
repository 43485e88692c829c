package breakout

// Snapshot contains the complete arena state flattened to primitive types.
// It is used for determinism checks and restart diagnostics.
type Snapshot struct {
	BallX, BallY   int
	BallVX, BallVY int
	PaddleX        int
	PaddleState    int
	Score          int
	Lives          int
	Paused         bool
	Restarts       int

	// Brick states in storage order: 1 = visible, 0 = destroyed
	BrickData []int
}

// Snapshot returns the current arena state as a Snapshot.
func (a *Arena) Snapshot() Snapshot {
	brickData := make([]int, len(a.Bricks))
	for i := range a.Bricks {
		if a.Bricks[i].Visible() {
			brickData[i] = 1
		}
	}

	return Snapshot{
		BallX:       a.Ball.Rect.X,
		BallY:       a.Ball.Rect.Y,
		BallVX:      a.Ball.VX,
		BallVY:      a.Ball.VY,
		PaddleX:     a.Paddle.Rect.X,
		PaddleState: int(a.Paddle.State),
		Score:       a.Score,
		Lives:       a.Lives,
		Paused:      a.Paused,
		Restarts:    a.Restarts,
		BrickData:   brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	var h uint64
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Restarts)    //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
