// Package chill implements the Chillguy Runner simulation: a side-scrolling
// runner where the player jumps over obstacles, lands on floating platforms
// and collects tokens to keep the chill meter from running dry.
package chill

import (
	"fmt"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// session is the mutable world of one run. It is owned by Game and passed
// explicitly to every engine function.
type session struct {
	player    Player
	tokens    []Token
	obstacles []Obstacle
	platforms []Platform
	sky       []SkyObject
	score     int
	chill     float64
	gameOver  bool
	paused    bool
	tick      uint64
}

// Game implements the Chillguy Runner game logic.
type Game struct {
	doc       *config.Document
	cfg       config.Config // Resolved for the current device and viewport
	runtime   core.RuntimeConfig
	world     world
	hud       HUD
	rng       core.Rand
	fixedRNG  bool   // rng was injected and survives Reset
	skyType   string // Overrides the configured sky type when set
	clock     gameClock
	highScore int
	s         session
	ready     bool
}

// Option configures a Game.
type Option func(*Game)

// WithDocument sets the configuration document resolved on every
// initialization. Without it the built-in defaults are used.
func WithDocument(doc *config.Document) Option {
	return func(g *Game) {
		g.doc = doc
	}
}

// WithRand injects the random source. It is kept across resets.
func WithRand(r core.Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRNG = r != nil
	}
}

// WithClock injects the wall clock used for elapsed-time scoring.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock.clock = c
	}
}

// New creates a new Chillguy Runner game instance.
// The game is uninitialized until Reset is called.
func New(opts ...Option) *Game {
	g := &Game{clock: gameClock{clock: core.SystemClock{}}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "chill"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chillguy Runner"
}

// Reset initializes the session for the given runtime. Any previous run is
// discarded. The random source is reseeded from runtime.Seed unless one was
// injected.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.fixedRNG {
		g.rng = core.NewRand(runtime.Seed)
	}
	g.resolve()
	g.initialize()
}

// Restart starts a fresh run with the current runtime, continuing the
// random stream. Configuration is re-resolved so a device change seen
// during game over takes effect now.
func (g *Game) Restart() {
	if !g.ready {
		return
	}
	g.resolve()
	g.initialize()
}

// resolve re-resolves configuration and viewport-derived geometry.
func (g *Game) resolve() {
	vp := g.runtime.Viewport()
	device := config.DetectDevice(g.runtime.Device, vp)
	g.cfg = g.doc.Resolve(device, vp)
	if g.skyType != "" {
		g.cfg.Sky.Type = g.skyType
	}
	g.world = newWorld(&g.cfg, vp)
	g.hud = computeHUD(&g.cfg, vp)
}

// initialize creates a fresh run: player on the ground, a new sky, a new
// platform set, no tokens or obstacles, zero score and a full chill meter.
func (g *Game) initialize() {
	size := playerSize(&g.cfg, g.world.vp)
	g.s = session{
		player: Player{
			X: g.cfg.Player.X,
			Y: g.world.groundY - size,
			W: size,
			H: size,
		},
		tokens:    make([]Token, 0, 16),
		obstacles: make([]Obstacle, 0, 8),
		chill:     config.ChillMax,
	}
	g.s.sky = makeSky(&g.cfg, g.world, g.rng)
	g.s.platforms = initialPlatforms(&g.cfg, g.world, g.rng)
	g.clock.start()
	g.ready = true
}

// Resize applies a new viewport between ticks. Score and entities survive a
// resize within the same device class; a device class change restarts the
// run, except after game over where the final result stays on screen and
// the new configuration applies to the next run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if !g.ready {
		g.Reset(runtime)
		return
	}
	prev := g.cfg.Device
	g.runtime = runtime
	g.resolve()
	if g.cfg.Device != prev && !g.s.gameOver {
		g.initialize()
		return
	}
	g.fitPlayer()
}

// fitPlayer rescales the player to the current viewport, keeping the feet
// where they were.
func (g *Game) fitPlayer() {
	p := &g.s.player
	size := playerSize(&g.cfg, g.world.vp)
	feet := p.Feet()
	p.X = g.cfg.Player.X
	p.W, p.H = size, size

	switch p.State() {
	case Grounded:
		groundPlayer(p, g.world)
	case OnPlatform:
		// Platforms keep their coordinates, so support is re-checked by
		// falling from the current height.
		p.Y = feet - size
		p.OnPlatform = false
		p.Jumping = true
		p.VY = 0
	case Jumping:
		p.Y = feet - size
	}
	if p.Y > g.world.groundY-size {
		groundPlayer(p, g.world)
	}
}

// Activate is the single player action: jump while running, restart after
// game over when the restart control was targeted. It returns the events
// the action produced.
func (g *Game) Activate(restartTargeted bool) []core.Event {
	if !g.ready || g.s.paused {
		return nil
	}
	if g.s.gameOver {
		if restartTargeted {
			g.Restart()
		}
		return nil
	}
	if jump(&g.s.player, &g.cfg) {
		return []core.Event{core.EventJump}
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.ready {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.s.gameOver {
		g.togglePause()
	}

	var events []core.Event
	if in.Has(core.ActionActivate) || in.Has(core.ActionRestart) {
		wasOver := g.s.gameOver
		events = g.Activate(in.Has(core.ActionRestart))
		if wasOver {
			return core.StepResult{State: g.State()}
		}
	}

	if g.s.gameOver || g.s.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	result := g.tick()
	result.Events = append(events, result.Events...)
	return result
}

// tick runs one simulation step in fixed order: sky, animation, player
// physics, spawning, scrolling, collisions, game over, elapsed-time score.
func (g *Game) tick() core.StepResult {
	s, cfg, w := &g.s, &g.cfg, g.world
	var events []core.Event

	s.tick++
	advanceSky(s.sky, cfg.Sky.Type, cfg, w, g.rng)
	animate(&s.player, cfg)
	if stepPlayer(&s.player, s.platforms, cfg, w) {
		s.score += cfg.Scoring.LandingBonus
	}

	spawn(s, cfg, w, g.rng)
	s.tokens = advanceTokens(s.tokens, cfg)
	s.obstacles = advanceObstacles(s.obstacles, cfg)
	s.platforms = advancePlatforms(s.platforms, cfg)

	if cfg.Magnetism.Enabled {
		magnetize(&s.player, s.tokens, cfg)
	}
	events = append(events, collide(s, cfg)...)

	if cfg.Chill.DrainPerTick > 0 {
		s.chill -= cfg.Chill.DrainPerTick
	}
	if checkGameOver(s) {
		events = append(events, core.EventGameOver)
	} else {
		s.score += g.clock.wholeSeconds() * cfg.Scoring.PerSecond
	}

	changed := g.updateHighScore()
	return core.StepResult{State: g.State(), Events: events, HighScoreChanged: changed}
}

// updateHighScore raises the high score when the current score passes it.
func (g *Game) updateHighScore() bool {
	if !g.cfg.HighScore.Enabled || g.s.score <= g.highScore {
		return false
	}
	g.highScore = g.s.score
	return true
}

func (g *Game) togglePause() {
	g.s.paused = !g.s.paused
	if g.s.paused {
		g.clock.pause()
	} else {
		g.clock.resume()
	}
}

// SetHighScore seeds the high score read from persistent storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = core.Max(0, score)
}

// SetSkyType switches the decorative sky objects and re-seeds them.
func (g *Game) SetSkyType(skyType string) error {
	switch skyType {
	case config.SkyClouds, config.SkyAsteroids, config.SkyRockets:
	default:
		return fmt.Errorf("chill: unknown sky type %q", skyType)
	}
	g.skyType = skyType
	g.cfg.Sky.Type = skyType
	if g.ready {
		g.s.sky = makeSky(&g.cfg, g.world, g.rng)
	}
	return nil
}

// SkyType returns the active sky object type.
func (g *Game) SkyType() string {
	return g.cfg.Sky.Type
}

// Config returns the configuration resolved for the current session.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Runtime returns the runtime the session was sized for.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// IsOver reports whether the run has ended and awaits a restart.
func (g *Game) IsOver() bool {
	return g.s.gameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.s.score,
		HighScore: g.highScore,
		Chill:     g.s.chill,
		GameOver:  g.s.gameOver,
		Paused:    g.s.paused,
	}
}
