package core

// RuntimeConfig contains configuration passed to the simulation at start.
// Screen dimensions are logical playfield units, not terminal cells.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in logical units
	ScreenH  int   // Playfield height in logical units
	TickRate int   // Frames per second the loop is paced at (<= 0 runs free)
	Seed     int64 // RNG seed for reproducible bounces
}
