package core

// Device names accepted in RuntimeConfig.Device.
const (
	DeviceAuto    = "auto"
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in cells
	ScreenH  int    // Screen height in cells
	CellW    int    // Simulation pixels per cell horizontally
	CellH    int    // Simulation pixels per cell vertically
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Device   string // "auto", "mobile" or "desktop"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CellW:    10,
		CellH:    20,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Device:   DeviceAuto,
	}
}

// Viewport returns the simulation viewport in pixels.
// A zero cell size counts as one pixel per cell.
func (c RuntimeConfig) Viewport() Viewport {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return Viewport{W: float64(c.ScreenW * cw), H: float64(c.ScreenH * ch)}
}

// Viewport is the visible simulation area in pixels.
type Viewport struct {
	W, H float64
}

// Smaller returns the smaller of the two viewport dimensions.
func (v Viewport) Smaller() float64 {
	if v.W < v.H {
		return v.W
	}
	return v.H
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	HighScore int     // Best score known to this session
	Chill     float64 // Chill meter in [0, 100]
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State            GameState
	Events           []Event
	HighScoreChanged bool // High score was raised during this tick
}
